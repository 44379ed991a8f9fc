package compendium

import (
	"srd-mirror/core/syncer"
)

func raceDescriptor() syncer.Descriptor {
	return syncer.Descriptor{
		Resource:  "races",
		Table:     "races",
		KeyColumn: "index",
		Map:       mapRace,
		Children: []syncer.ChildTable{
			{
				Table:        "race_ability_bonuses",
				ParentColumn: "race_index",
				KeyColumns:   []string{"race_index", "ability_score_index"},
				Extract:      extractRaceAbilityBonuses,
			},
			{
				Table:        "race_languages",
				ParentColumn: "race_index",
				KeyColumns:   []string{"race_index", "language_index"},
				Extract:      indexRefs("languages", "language_index"),
			},
			{
				Table:        "race_traits",
				ParentColumn: "race_index",
				KeyColumns:   []string{"race_index", "trait_index"},
				Extract:      indexRefs("traits", "trait_index"),
			},
		},
	}
}

func mapRace(doc syncer.Document) (syncer.Record, error) {
	index, name, err := requireKeyAndName(doc)
	if err != nil {
		return nil, err
	}
	return syncer.Record{
		"index":                        index,
		"name":                         name,
		"speed":                        doc.Int("speed"),
		"alignment":                    doc.Text("alignment"),
		"age":                          doc.Text("age"),
		"size":                         doc.Text("size"),
		"size_description":             doc.Text("size_description"),
		"language_desc":                doc.Text("language_desc"),
		"ability_bonus_options":        doc.JSON("ability_bonus_options"),
		"starting_proficiencies":       doc.JSON("starting_proficiencies"),
		"starting_proficiency_options": doc.JSON("starting_proficiency_options"),
		"language_options":             doc.JSON("language_options"),
		"subraces":                     doc.JSON("subraces"),
	}, nil
}

// extractRaceAbilityBonuses carries the bonus amount alongside each ability
// score reference (e.g. +2 DEX for elves).
func extractRaceAbilityBonuses(doc syncer.Document) ([]syncer.Record, error) {
	entries := doc.Docs("ability_bonuses")
	records := make([]syncer.Record, 0, len(entries))
	for _, entry := range entries {
		index, err := entry.Doc("ability_score").Require("index")
		if err != nil {
			return nil, err
		}
		records = append(records, syncer.Record{
			"ability_score_index": index,
			"bonus":               entry.Int("bonus"),
		})
	}
	return records, nil
}
