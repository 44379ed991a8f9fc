package syncer

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Document is one decoded detail payload from the upstream API. Accessors are
// tolerant: absent or mistyped fields yield zero values or nil, so optional
// source fields map to SQL NULL instead of failing the item. Only Require
// fails, and only for fields the schema needs as non-null.
type Document map[string]any

// MappingError indicates a schema-required field was absent from the source
// document. It fails the single offending item, never the whole resource.
type MappingError struct {
	Field string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("required field %q absent from source document", e.Field)
}

// Require returns the string value of a field the schema needs as non-null.
func (d Document) Require(key string) (string, error) {
	val, ok := d[key]
	if !ok || val == nil {
		return "", &MappingError{Field: key}
	}
	s := toString(val)
	if s == "" {
		return "", &MappingError{Field: key}
	}
	return s, nil
}

// StringOr returns the field as a string, or fallback when absent.
func (d Document) StringOr(key, fallback string) string {
	val, ok := d[key]
	if !ok || val == nil {
		return fallback
	}
	return toString(val)
}

// Text returns the field as a string, or nil when absent, for nullable
// text columns.
func (d Document) Text(key string) any {
	val, ok := d[key]
	if !ok || val == nil {
		return nil
	}
	return toString(val)
}

// Int returns the field coerced to int, 0 when absent. JSON numbers decode
// as float64, hence the coercion.
func (d Document) Int(key string) int {
	return toInt(d[key])
}

// Float returns the field coerced to float64, 0 when absent.
func (d Document) Float(key string) float64 {
	switch v := d[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	default:
		return 0
	}
}

// Bool returns the field as a bool, false when absent.
func (d Document) Bool(key string) bool {
	b, _ := d[key].(bool)
	return b
}

// Doc returns a nested object as a Document; empty when absent.
func (d Document) Doc(key string) Document {
	if sub, ok := d[key].(map[string]any); ok {
		return Document(sub)
	}
	return Document{}
}

// Docs returns a nested array of objects; nil when absent.
func (d Document) Docs(key string) []Document {
	list, ok := d[key].([]any)
	if !ok {
		return nil
	}
	docs := make([]Document, 0, len(list))
	for _, el := range list {
		if sub, ok := el.(map[string]any); ok {
			docs = append(docs, Document(sub))
		}
	}
	return docs
}

// Nested walks a chain of object keys and returns the terminal value, or nil
// as soon as any link is absent.
func (d Document) Nested(keys ...string) any {
	var cur any = map[string]any(d)
	for _, key := range keys {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur, ok = obj[key]
		if !ok {
			return nil
		}
	}
	return cur
}

// JSON serializes a structured sub-tree to a JSON string for a text column,
// preserving full fidelity. Returns nil when the field is absent.
func (d Document) JSON(key string) any {
	val, ok := d[key]
	if !ok || val == nil {
		return nil
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return nil
	}
	return string(raw)
}

// Paragraphs joins a multi-paragraph description array into one text field
// separated by blank lines. A plain string passes through unchanged.
func (d Document) Paragraphs(key string) string {
	switch v := d[key].(type) {
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, p := range v {
			if s, ok := p.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "\n\n")
	default:
		return ""
	}
}

func toString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		// JSON integers arrive as float64; keep "5" not "5e+00".
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func toInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		i, _ := strconv.Atoi(v)
		return i
	default:
		return 0
	}
}
