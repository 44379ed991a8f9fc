package syncer

import (
	"context"

	"srd-mirror/core/remote"
)

// Record is a flat column name to value mapping ready for storage. Values are
// scalars, JSON-encoded strings, or nil for SQL NULL.
type Record map[string]any

// MapFunc transforms one detail document into the parent Record.
type MapFunc func(doc Document) (Record, error)

// ExtractFunc produces zero or more child records from the parent detail
// document. The parent-key column is filled in by the engine.
type ExtractFunc func(doc Document) ([]Record, error)

// ExpandFunc fetches auxiliary sub-documents referenced by URL inside a
// detail document (e.g. a class's level progression) and grafts them onto the
// document before mapping.
type ExpandFunc func(ctx context.Context, client remote.Client, doc Document) (Document, error)

// ChildTable describes one nested collection fanned out into its own table.
type ChildTable struct {
	// Table is the child table name, conventionally <parent>_<relation>.
	Table string

	// ParentColumn is the column holding the parent's natural key.
	ParentColumn string

	// KeyColumns are the columns of the composite unique key. Records whose
	// composite key repeats within one replacement are dropped before insert
	// (first seen wins) so upstream duplicates never trip the constraint.
	KeyColumns []string

	// Extract pulls the current child set out of the detail document.
	Extract ExtractFunc
}

// Descriptor statically describes how one resource maps into the database.
// Descriptors are defined once at startup and never mutated.
type Descriptor struct {
	// Resource is the remote collection name, e.g. "monsters".
	Resource string

	// Table is the parent table.
	Table string

	// KeyColumn is the natural-key column, unique per table.
	KeyColumn string

	// Map transforms a detail document into the parent record.
	Map MapFunc

	// Expand, when set, fetches auxiliary sub-documents before mapping.
	Expand ExpandFunc

	// Children lists the child tables replaced alongside every parent write.
	Children []ChildTable
}

// Enriched reports whether the resource needs the transactional
// multi-table path.
func (d Descriptor) Enriched() bool {
	return d.Expand != nil || len(d.Children) > 0
}

// Report summarizes one resource sync. It is built per invocation and
// discarded with the response.
type Report struct {
	// Resource is the synced collection name.
	Resource string `json:"resource"`

	// Attempted is the number of items listed by the upstream index.
	Attempted int `json:"attempted"`

	// Synced is the number of items fully committed.
	Synced int `json:"synced"`
}
