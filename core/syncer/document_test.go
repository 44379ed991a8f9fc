package syncer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Require(t *testing.T) {
	doc := Document{"index": "acrobatics", "empty": ""}

	val, err := doc.Require("index")
	require.NoError(t, err)
	assert.Equal(t, "acrobatics", val)

	_, err = doc.Require("missing")
	var mapErr *MappingError
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, "missing", mapErr.Field)

	_, err = doc.Require("empty")
	assert.ErrorAs(t, err, &mapErr)
}

func TestDocument_Paragraphs(t *testing.T) {
	doc := Document{
		"desc":   []any{"para1", "para2"},
		"single": "just text",
	}

	assert.Equal(t, "para1\n\npara2", doc.Paragraphs("desc"))
	assert.Equal(t, "just text", doc.Paragraphs("single"))
	assert.Equal(t, "", doc.Paragraphs("absent"))
}

func TestDocument_Text(t *testing.T) {
	doc := Document{"subtype": "shapechanger"}

	assert.Equal(t, "shapechanger", doc.Text("subtype"))
	// Absent optional fields map to NULL, not empty string.
	assert.Nil(t, doc.Text("missing"))
}

func TestDocument_JSON(t *testing.T) {
	doc := Document{
		"speed": map[string]any{"walk": "30 ft.", "fly": "60 ft."},
		"tags":  []any{"a", "b"},
	}

	speed, ok := doc.JSON("speed").(string)
	require.True(t, ok)
	assert.Contains(t, speed, `"walk":"30 ft."`)

	tags, ok := doc.JSON("tags").(string)
	require.True(t, ok)
	assert.Equal(t, `["a","b"]`, tags)

	assert.Nil(t, doc.JSON("absent"))
}

func TestDocument_Nested(t *testing.T) {
	doc := Document{
		"ability_score": map[string]any{"index": "dex", "name": "DEX"},
	}

	assert.Equal(t, "DEX", doc.Nested("ability_score", "name"))
	assert.Nil(t, doc.Nested("ability_score", "url"))
	assert.Nil(t, doc.Nested("missing", "name"))
}

func TestDocument_Numbers(t *testing.T) {
	// JSON numbers decode as float64.
	doc := Document{"level": float64(3), "weight": float64(6.5), "ritual": true}

	assert.Equal(t, 3, doc.Int("level"))
	assert.Equal(t, 6.5, doc.Float("weight"))
	assert.True(t, doc.Bool("ritual"))
	assert.Equal(t, 0, doc.Int("absent"))
}

func TestDocument_Docs(t *testing.T) {
	doc := Document{
		"proficiencies": []any{
			map[string]any{"index": "skill-perception"},
			map[string]any{"index": "skill-stealth"},
		},
	}

	docs := doc.Docs("proficiencies")
	require.Len(t, docs, 2)
	assert.Equal(t, "skill-stealth", docs[1].StringOr("index", ""))
	assert.Nil(t, doc.Docs("absent"))
}
