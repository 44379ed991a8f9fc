package compendium

import (
	"srd-mirror/core/syncer"
)

func spellDescriptor() syncer.Descriptor {
	return syncer.Descriptor{
		Resource:  "spells",
		Table:     "spells",
		KeyColumn: "index",
		Map:       mapSpell,
		Children: []syncer.ChildTable{
			{
				Table:        "spell_classes",
				ParentColumn: "spell_index",
				KeyColumns:   []string{"spell_index", "class_index"},
				Extract:      indexRefs("classes", "class_index"),
			},
			{
				Table:        "spell_subclasses",
				ParentColumn: "spell_index",
				KeyColumns:   []string{"spell_index", "subclass_index"},
				Extract:      indexRefs("subclasses", "subclass_index"),
			},
		},
	}
}

func mapSpell(doc syncer.Document) (syncer.Record, error) {
	index, name, err := requireKeyAndName(doc)
	if err != nil {
		return nil, err
	}

	// higher_level is absent for spells that do not scale; keep NULL rather
	// than an empty string so the two cases stay distinguishable.
	var higherLevel any
	if _, ok := doc["higher_level"]; ok {
		higherLevel = doc.Paragraphs("higher_level")
	}

	return syncer.Record{
		"index":          index,
		"name":           name,
		"description":    doc.Paragraphs("desc"),
		"higher_level":   higherLevel,
		"range":          doc.Text("range"),
		"components":     doc.JSON("components"),
		"material":       doc.Text("material"),
		"ritual":         doc.Bool("ritual"),
		"duration":       doc.Text("duration"),
		"concentration":  doc.Bool("concentration"),
		"casting_time":   doc.Text("casting_time"),
		"level":          doc.Int("level"),
		"attack_type":    doc.Text("attack_type"),
		"damage":         doc.JSON("damage"),
		"dc":             doc.JSON("dc"),
		"heal_at_slot":   doc.JSON("heal_at_slot_level"),
		"area_of_effect": doc.JSON("area_of_effect"),
		"school":         doc.Nested("school", "index"),
	}, nil
}
