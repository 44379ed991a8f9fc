package compendium

import (
	"srd-mirror/core/syncer"
)

func subclassDescriptor() syncer.Descriptor {
	return syncer.Descriptor{
		Resource:  "subclasses",
		Table:     "subclasses",
		KeyColumn: "index",
		Map:       mapSubclass,
		Children: []syncer.ChildTable{
			{
				Table:        "subclass_spells",
				ParentColumn: "subclass_index",
				KeyColumns:   []string{"subclass_index", "spell_index"},
				Extract:      extractSubclassSpells,
			},
		},
	}
}

func mapSubclass(doc syncer.Document) (syncer.Record, error) {
	index, name, err := requireKeyAndName(doc)
	if err != nil {
		return nil, err
	}
	return syncer.Record{
		"index":           index,
		"name":            name,
		"class_index":     doc.Nested("class", "index"),
		"subclass_flavor": doc.Text("subclass_flavor"),
		"description":     doc.Paragraphs("desc"),
	}, nil
}

// extractSubclassSpells lists the spells a subclass grants. The same spell
// can appear once per prerequisite level in the upstream payload; the
// replacer's first-seen-wins dedup collapses those to one row.
func extractSubclassSpells(doc syncer.Document) ([]syncer.Record, error) {
	entries := doc.Docs("spells")
	records := make([]syncer.Record, 0, len(entries))
	for _, entry := range entries {
		index, err := entry.Doc("spell").Require("index")
		if err != nil {
			return nil, err
		}
		records = append(records, syncer.Record{"spell_index": index})
	}
	return records, nil
}
