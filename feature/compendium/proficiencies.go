package compendium

import (
	"srd-mirror/core/syncer"
)

func proficiencyDescriptor() syncer.Descriptor {
	return syncer.Descriptor{
		Resource:  "proficiencies",
		Table:     "proficiencies",
		KeyColumn: "index",
		Map:       mapProficiency,
		Children: []syncer.ChildTable{
			{
				Table:        "proficiency_classes",
				ParentColumn: "proficiency_index",
				KeyColumns:   []string{"proficiency_index", "class_index"},
				Extract:      indexRefs("classes", "class_index"),
			},
			{
				Table:        "proficiency_races",
				ParentColumn: "proficiency_index",
				KeyColumns:   []string{"proficiency_index", "race_index"},
				Extract:      indexRefs("races", "race_index"),
			},
		},
	}
}

func mapProficiency(doc syncer.Document) (syncer.Record, error) {
	index, name, err := requireKeyAndName(doc)
	if err != nil {
		return nil, err
	}
	return syncer.Record{
		"index":     index,
		"name":      name,
		"type":      doc.Text("type"),
		"reference": doc.JSON("reference"),
	}, nil
}
