package compendium

import (
	"srd-mirror/core/syncer"
)

func traitDescriptor() syncer.Descriptor {
	return syncer.Descriptor{
		Resource:  "traits",
		Table:     "traits",
		KeyColumn: "index",
		Map:       mapTrait,
		Children: []syncer.ChildTable{
			{
				Table:        "trait_races",
				ParentColumn: "trait_index",
				KeyColumns:   []string{"trait_index", "race_index"},
				Extract:      indexRefs("races", "race_index"),
			},
			{
				Table:        "trait_subraces",
				ParentColumn: "trait_index",
				KeyColumns:   []string{"trait_index", "subrace_index"},
				Extract:      indexRefs("subraces", "subrace_index"),
			},
			{
				Table:        "trait_proficiencies",
				ParentColumn: "trait_index",
				KeyColumns:   []string{"trait_index", "proficiency_index"},
				Extract:      indexRefs("proficiencies", "proficiency_index"),
			},
		},
	}
}

func mapTrait(doc syncer.Document) (syncer.Record, error) {
	index, name, err := requireKeyAndName(doc)
	if err != nil {
		return nil, err
	}
	return syncer.Record{
		"index":               index,
		"name":                name,
		"description":         doc.Paragraphs("desc"),
		"proficiency_choices": doc.JSON("proficiency_choices"),
		"language_options":    doc.JSON("language_options"),
		"trait_specific":      doc.JSON("trait_specific"),
		"parent_index":        doc.Nested("parent", "index"),
	}, nil
}
