package compendium

import (
	"context"
	"fmt"

	"srd-mirror/core/remote"
	"srd-mirror/core/syncer"
)

// Keys the class expansion grafts onto the detail document. The upstream
// detail only embeds URLs for the level progression and the spell list; the
// expanded documents live under these keys for the extractors.
const (
	classLevelRowsKey = "class_level_rows"
	classSpellListKey = "class_spell_list"
)

func classDescriptor() syncer.Descriptor {
	return syncer.Descriptor{
		Resource:  "classes",
		Table:     "classes",
		KeyColumn: "index",
		Map:       mapClass,
		Expand:    expandClass,
		Children: []syncer.ChildTable{
			{
				Table:        "class_proficiencies",
				ParentColumn: "class_index",
				KeyColumns:   []string{"class_index", "proficiency_index"},
				Extract:      indexRefs("proficiencies", "proficiency_index"),
			},
			{
				Table:        "class_saving_throws",
				ParentColumn: "class_index",
				KeyColumns:   []string{"class_index", "ability_score_index"},
				Extract:      indexRefs("saving_throws", "ability_score_index"),
			},
			{
				Table:        "class_levels",
				ParentColumn: "class_index",
				KeyColumns:   []string{"class_index", "level"},
				Extract:      extractClassLevels,
			},
			{
				Table:        "class_spells",
				ParentColumn: "class_index",
				KeyColumns:   []string{"class_index", "spell_index"},
				Extract:      extractClassSpells,
			},
			{
				Table:        "class_subclasses",
				ParentColumn: "class_index",
				KeyColumns:   []string{"class_index", "subclass_index"},
				Extract:      indexRefs("subclasses", "subclass_index"),
			},
		},
	}
}

// expandClass fetches the auxiliary sub-documents a class detail references
// by URL: the level progression (array endpoint) and the class spell list
// (reference-list endpoint).
func expandClass(ctx context.Context, client remote.Client, doc syncer.Document) (syncer.Document, error) {
	if url, ok := doc["class_levels"].(string); ok && url != "" {
		levels, err := client.GetList(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("fetching level progression: %w", err)
		}
		doc[classLevelRowsKey] = levels
	}

	if url, ok := doc["spells"].(string); ok && url != "" {
		refs, err := client.Refs(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("fetching spell list: %w", err)
		}
		doc[classSpellListKey] = refs
	}

	return doc, nil
}

func mapClass(doc syncer.Document) (syncer.Record, error) {
	index, name, err := requireKeyAndName(doc)
	if err != nil {
		return nil, err
	}
	return syncer.Record{
		"index":                      index,
		"name":                       name,
		"hit_die":                    doc.Int("hit_die"),
		"proficiency_choices":        doc.JSON("proficiency_choices"),
		"starting_equipment":         doc.JSON("starting_equipment"),
		"starting_equipment_options": doc.JSON("starting_equipment_options"),
		"multi_classing":             doc.JSON("multi_classing"),
		"spellcasting":               doc.JSON("spellcasting"),
		"spellcasting_ability":       doc.Nested("spellcasting", "spellcasting_ability", "index"),
	}, nil
}

func extractClassLevels(doc syncer.Document) ([]syncer.Record, error) {
	rows, _ := doc[classLevelRowsKey].([]map[string]any)
	records := make([]syncer.Record, 0, len(rows))
	for _, row := range rows {
		level := syncer.Document(row)
		records = append(records, syncer.Record{
			"level":                 level.Int("level"),
			"ability_score_bonuses": level.Int("ability_score_bonuses"),
			"prof_bonus":            level.Int("prof_bonus"),
			"features":              level.JSON("features"),
			"spellcasting":          level.JSON("spellcasting"),
			"class_specific":        level.JSON("class_specific"),
		})
	}
	return records, nil
}

func extractClassSpells(doc syncer.Document) ([]syncer.Record, error) {
	refs, _ := doc[classSpellListKey].([]remote.Ref)
	records := make([]syncer.Record, 0, len(refs))
	for _, ref := range refs {
		records = append(records, syncer.Record{"spell_index": ref.Index})
	}
	return records, nil
}
