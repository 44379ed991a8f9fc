package compendium

import (
	"srd-mirror/core/syncer"
)

func monsterDescriptor() syncer.Descriptor {
	return syncer.Descriptor{
		Resource:  "monsters",
		Table:     "monsters",
		KeyColumn: "index",
		Map:       mapMonster,
		Children: []syncer.ChildTable{
			{
				Table:        "monster_proficiencies",
				ParentColumn: "monster_index",
				KeyColumns:   []string{"monster_index", "proficiency_index"},
				Extract:      extractMonsterProficiencies,
			},
			{
				Table:        "monster_condition_immunities",
				ParentColumn: "monster_index",
				KeyColumns:   []string{"monster_index", "condition_index"},
				Extract:      indexRefs("condition_immunities", "condition_index"),
			},
		},
	}
}

func mapMonster(doc syncer.Document) (syncer.Record, error) {
	index, name, err := requireKeyAndName(doc)
	if err != nil {
		return nil, err
	}
	return syncer.Record{
		"index":                  index,
		"name":                   name,
		"size":                   doc.Text("size"),
		"type":                   doc.Text("type"),
		"subtype":                doc.Text("subtype"),
		"alignment":              doc.Text("alignment"),
		"armor_class":            doc.JSON("armor_class"),
		"hit_points":             doc.Int("hit_points"),
		"hit_dice":               doc.Text("hit_dice"),
		"hit_points_roll":        doc.Text("hit_points_roll"),
		"speed":                  doc.JSON("speed"),
		"strength":               doc.Int("strength"),
		"dexterity":              doc.Int("dexterity"),
		"constitution":           doc.Int("constitution"),
		"intelligence":           doc.Int("intelligence"),
		"wisdom":                 doc.Int("wisdom"),
		"charisma":               doc.Int("charisma"),
		"damage_vulnerabilities": doc.JSON("damage_vulnerabilities"),
		"damage_resistances":     doc.JSON("damage_resistances"),
		"damage_immunities":      doc.JSON("damage_immunities"),
		"senses":                 doc.JSON("senses"),
		"languages":              doc.Text("languages"),
		"challenge_rating":       doc.Float("challenge_rating"),
		"xp":                     doc.Int("xp"),
		"special_abilities":      doc.JSON("special_abilities"),
		"actions":                doc.JSON("actions"),
		"legendary_actions":      doc.JSON("legendary_actions"),
		"reactions":              doc.JSON("reactions"),
		"forms":                  doc.JSON("forms"),
		"image":                  doc.Text("image"),
	}, nil
}

// extractMonsterProficiencies carries the numeric modifier alongside each
// proficiency reference (e.g. "skill-perception" with value 4).
func extractMonsterProficiencies(doc syncer.Document) ([]syncer.Record, error) {
	entries := doc.Docs("proficiencies")
	records := make([]syncer.Record, 0, len(entries))
	for _, entry := range entries {
		index, err := entry.Doc("proficiency").Require("index")
		if err != nil {
			return nil, err
		}
		records = append(records, syncer.Record{
			"proficiency_index": index,
			"value":             entry.Int("value"),
		})
	}
	return records, nil
}
