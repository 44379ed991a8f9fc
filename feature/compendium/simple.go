package compendium

import (
	"srd-mirror/core/syncer"
)

// simpleDescriptors returns the 17 resources whose detail documents flatten
// into a single parent row: structured sub-objects are serialized to JSON
// text columns instead of being fanned out.
func simpleDescriptors() []syncer.Descriptor {
	return []syncer.Descriptor{
		{Resource: "ability-scores", Table: "ability_scores", KeyColumn: "index", Map: mapAbilityScore},
		{Resource: "alignments", Table: "alignments", KeyColumn: "index", Map: mapAlignment},
		{Resource: "backgrounds", Table: "backgrounds", KeyColumn: "index", Map: mapBackground},
		{Resource: "conditions", Table: "conditions", KeyColumn: "index", Map: mapCondition},
		{Resource: "damage-types", Table: "damage_types", KeyColumn: "index", Map: mapDamageType},
		{Resource: "equipment", Table: "equipment", KeyColumn: "index", Map: mapEquipment},
		{Resource: "equipment-categories", Table: "equipment_categories", KeyColumn: "index", Map: mapEquipmentCategory},
		{Resource: "feats", Table: "feats", KeyColumn: "index", Map: mapFeat},
		{Resource: "features", Table: "features", KeyColumn: "index", Map: mapFeature},
		{Resource: "languages", Table: "languages", KeyColumn: "index", Map: mapLanguage},
		{Resource: "magic-items", Table: "magic_items", KeyColumn: "index", Map: mapMagicItem},
		{Resource: "magic-schools", Table: "magic_schools", KeyColumn: "index", Map: mapMagicSchool},
		{Resource: "rules", Table: "rules", KeyColumn: "index", Map: mapRule},
		{Resource: "rule-sections", Table: "rule_sections", KeyColumn: "index", Map: mapRuleSection},
		{Resource: "skills", Table: "skills", KeyColumn: "index", Map: mapSkill},
		{Resource: "subraces", Table: "subraces", KeyColumn: "index", Map: mapSubrace},
		{Resource: "weapon-properties", Table: "weapon_properties", KeyColumn: "index", Map: mapWeaponProperty},
	}
}

func mapAbilityScore(doc syncer.Document) (syncer.Record, error) {
	index, name, err := requireKeyAndName(doc)
	if err != nil {
		return nil, err
	}
	return syncer.Record{
		"index":       index,
		"name":        name,
		"full_name":   doc.Text("full_name"),
		"description": doc.Paragraphs("desc"),
		"skills":      doc.JSON("skills"),
	}, nil
}

func mapAlignment(doc syncer.Document) (syncer.Record, error) {
	index, name, err := requireKeyAndName(doc)
	if err != nil {
		return nil, err
	}
	return syncer.Record{
		"index":        index,
		"name":         name,
		"abbreviation": doc.Text("abbreviation"),
		"description":  doc.Paragraphs("desc"),
	}, nil
}

func mapBackground(doc syncer.Document) (syncer.Record, error) {
	index, name, err := requireKeyAndName(doc)
	if err != nil {
		return nil, err
	}
	feature := doc.Doc("feature")
	return syncer.Record{
		"index":                      index,
		"name":                       name,
		"feature_name":               feature.Text("name"),
		"feature_description":        feature.Paragraphs("desc"),
		"starting_proficiencies":     doc.JSON("starting_proficiencies"),
		"language_options":           doc.JSON("language_options"),
		"starting_equipment":         doc.JSON("starting_equipment"),
		"starting_equipment_options": doc.JSON("starting_equipment_options"),
		"personality_traits":         doc.JSON("personality_traits"),
		"ideals":                     doc.JSON("ideals"),
		"bonds":                      doc.JSON("bonds"),
		"flaws":                      doc.JSON("flaws"),
	}, nil
}

func mapCondition(doc syncer.Document) (syncer.Record, error) {
	index, name, err := requireKeyAndName(doc)
	if err != nil {
		return nil, err
	}
	return syncer.Record{
		"index":       index,
		"name":        name,
		"description": doc.Paragraphs("desc"),
	}, nil
}

func mapDamageType(doc syncer.Document) (syncer.Record, error) {
	index, name, err := requireKeyAndName(doc)
	if err != nil {
		return nil, err
	}
	return syncer.Record{
		"index":       index,
		"name":        name,
		"description": doc.Paragraphs("desc"),
	}, nil
}

func mapEquipment(doc syncer.Document) (syncer.Record, error) {
	index, name, err := requireKeyAndName(doc)
	if err != nil {
		return nil, err
	}
	cost := doc.Doc("cost")
	return syncer.Record{
		"index":                index,
		"name":                 name,
		"equipment_category":   doc.Nested("equipment_category", "index"),
		"gear_category":        doc.Nested("gear_category", "index"),
		"weapon_category":      doc.Text("weapon_category"),
		"weapon_range":         doc.Text("weapon_range"),
		"category_range":       doc.Text("category_range"),
		"armor_category":       doc.Text("armor_category"),
		"armor_class":          doc.JSON("armor_class"),
		"str_minimum":          doc.Int("str_minimum"),
		"stealth_disadvantage": doc.Bool("stealth_disadvantage"),
		"cost_quantity":        cost.Int("quantity"),
		"cost_unit":            cost.Text("unit"),
		"damage":               doc.JSON("damage"),
		"two_handed_damage":    doc.JSON("two_handed_damage"),
		"range":                doc.JSON("range"),
		"throw_range":          doc.JSON("throw_range"),
		"properties":           doc.JSON("properties"),
		"contents":             doc.JSON("contents"),
		"weight":               doc.Float("weight"),
		"description":          doc.Paragraphs("desc"),
		"special":              doc.Paragraphs("special"),
	}, nil
}

func mapEquipmentCategory(doc syncer.Document) (syncer.Record, error) {
	index, name, err := requireKeyAndName(doc)
	if err != nil {
		return nil, err
	}
	return syncer.Record{
		"index":     index,
		"name":      name,
		"equipment": doc.JSON("equipment"),
	}, nil
}

func mapFeat(doc syncer.Document) (syncer.Record, error) {
	index, name, err := requireKeyAndName(doc)
	if err != nil {
		return nil, err
	}
	return syncer.Record{
		"index":         index,
		"name":          name,
		"description":   doc.Paragraphs("desc"),
		"prerequisites": doc.JSON("prerequisites"),
	}, nil
}

func mapFeature(doc syncer.Document) (syncer.Record, error) {
	index, name, err := requireKeyAndName(doc)
	if err != nil {
		return nil, err
	}
	return syncer.Record{
		"index":            index,
		"name":             name,
		"level":            doc.Int("level"),
		"class_index":      doc.Nested("class", "index"),
		"subclass_index":   doc.Nested("subclass", "index"),
		"parent_index":     doc.Nested("parent", "index"),
		"description":      doc.Paragraphs("desc"),
		"prerequisites":    doc.JSON("prerequisites"),
		"feature_specific": doc.JSON("feature_specific"),
	}, nil
}

func mapLanguage(doc syncer.Document) (syncer.Record, error) {
	index, name, err := requireKeyAndName(doc)
	if err != nil {
		return nil, err
	}
	return syncer.Record{
		"index":            index,
		"name":             name,
		"type":             doc.Text("type"),
		"script":           doc.Text("script"),
		"typical_speakers": doc.JSON("typical_speakers"),
		"description":      doc.Text("desc"),
	}, nil
}

func mapMagicItem(doc syncer.Document) (syncer.Record, error) {
	index, name, err := requireKeyAndName(doc)
	if err != nil {
		return nil, err
	}
	return syncer.Record{
		"index":              index,
		"name":               name,
		"equipment_category": doc.Nested("equipment_category", "index"),
		"rarity":             doc.Nested("rarity", "name"),
		"is_variant":         doc.Bool("variant"),
		"variants":           doc.JSON("variants"),
		"description":        doc.Paragraphs("desc"),
	}, nil
}

func mapMagicSchool(doc syncer.Document) (syncer.Record, error) {
	index, name, err := requireKeyAndName(doc)
	if err != nil {
		return nil, err
	}
	return syncer.Record{
		"index":       index,
		"name":        name,
		"description": doc.Paragraphs("desc"),
	}, nil
}

func mapRule(doc syncer.Document) (syncer.Record, error) {
	index, name, err := requireKeyAndName(doc)
	if err != nil {
		return nil, err
	}
	return syncer.Record{
		"index":       index,
		"name":        name,
		"description": doc.Text("desc"),
		"subsections": doc.JSON("subsections"),
	}, nil
}

func mapRuleSection(doc syncer.Document) (syncer.Record, error) {
	index, name, err := requireKeyAndName(doc)
	if err != nil {
		return nil, err
	}
	return syncer.Record{
		"index":       index,
		"name":        name,
		"description": doc.Text("desc"),
	}, nil
}

func mapSkill(doc syncer.Document) (syncer.Record, error) {
	index, name, err := requireKeyAndName(doc)
	if err != nil {
		return nil, err
	}
	return syncer.Record{
		"index":         index,
		"name":          name,
		"description":   doc.Paragraphs("desc"),
		"ability_score": doc.Nested("ability_score", "name"),
	}, nil
}

func mapSubrace(doc syncer.Document) (syncer.Record, error) {
	index, name, err := requireKeyAndName(doc)
	if err != nil {
		return nil, err
	}
	return syncer.Record{
		"index":                  index,
		"name":                   name,
		"race_index":             doc.Nested("race", "index"),
		"description":            doc.Text("desc"),
		"ability_bonuses":        doc.JSON("ability_bonuses"),
		"starting_proficiencies": doc.JSON("starting_proficiencies"),
		"languages":              doc.JSON("languages"),
		"language_options":       doc.JSON("language_options"),
		"racial_traits":          doc.JSON("racial_traits"),
	}, nil
}

func mapWeaponProperty(doc syncer.Document) (syncer.Record, error) {
	index, name, err := requireKeyAndName(doc)
	if err != nil {
		return nil, err
	}
	return syncer.Record{
		"index":       index,
		"name":        name,
		"description": doc.Paragraphs("desc"),
	}, nil
}
