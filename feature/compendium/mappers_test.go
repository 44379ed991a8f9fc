package compendium

import (
	"context"
	"testing"

	"srd-mirror/core/remote"
	"srd-mirror/core/remote/mocks"
	"srd-mirror/core/syncer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CoversAllResources(t *testing.T) {
	registry := Registry()
	assert.Len(t, registry, 24)

	for _, name := range syncOrder {
		d, ok := registry[name]
		require.True(t, ok, "missing descriptor for %s", name)
		assert.Equal(t, name, d.Resource)
		assert.Equal(t, "index", d.KeyColumn)
		assert.NotNil(t, d.Map)
	}

	// Child-table counts per complex resource.
	assert.Len(t, registry["classes"].Children, 5)
	assert.Len(t, registry["monsters"].Children, 2)
	assert.Len(t, registry["proficiencies"].Children, 2)
	assert.Len(t, registry["races"].Children, 3)
	assert.Len(t, registry["spells"].Children, 2)
	assert.Len(t, registry["subclasses"].Children, 1)
	assert.Len(t, registry["traits"].Children, 3)
}

func TestMapSkill(t *testing.T) {
	rec, err := mapSkill(syncer.Document{
		"index":         "acrobatics",
		"name":          "Acrobatics",
		"desc":          []any{"para1", "para2"},
		"ability_score": map[string]any{"name": "DEX"},
	})
	require.NoError(t, err)

	assert.Equal(t, "acrobatics", rec["index"])
	assert.Equal(t, "Acrobatics", rec["name"])
	assert.Equal(t, "para1\n\npara2", rec["description"])
	assert.Equal(t, "DEX", rec["ability_score"])
}

func TestMapSkill_MissingIndex(t *testing.T) {
	_, err := mapSkill(syncer.Document{"name": "Acrobatics"})

	var mapErr *syncer.MappingError
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, "index", mapErr.Field)
}

func TestMapMonster_OptionalSubtype(t *testing.T) {
	rec, err := mapMonster(syncer.Document{
		"index":      "werewolf",
		"name":       "Werewolf",
		"subtype":    "shapechanger",
		"hit_points": float64(58),
	})
	require.NoError(t, err)
	assert.Equal(t, "shapechanger", rec["subtype"])
	assert.Equal(t, 58, rec["hit_points"])

	rec, err = mapMonster(syncer.Document{"index": "wight", "name": "Wight"})
	require.NoError(t, err)
	assert.Nil(t, rec["subtype"])
}

func TestMapSpell_HigherLevel(t *testing.T) {
	rec, err := mapSpell(syncer.Document{
		"index":        "fireball",
		"name":         "Fireball",
		"desc":         []any{"A bright streak flashes."},
		"higher_level": []any{"extra die per slot level"},
	})
	require.NoError(t, err)
	assert.Equal(t, "extra die per slot level", rec["higher_level"])

	rec, err = mapSpell(syncer.Document{"index": "light", "name": "Light"})
	require.NoError(t, err)
	assert.Nil(t, rec["higher_level"])
}

func TestExtractMonsterProficiencies(t *testing.T) {
	records, err := extractMonsterProficiencies(syncer.Document{
		"proficiencies": []any{
			map[string]any{"value": float64(4), "proficiency": map[string]any{"index": "skill-perception"}},
			map[string]any{"value": float64(6), "proficiency": map[string]any{"index": "skill-stealth"}},
		},
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "skill-perception", records[0]["proficiency_index"])
	assert.Equal(t, 4, records[0]["value"])
}

func TestExtractRaceAbilityBonuses(t *testing.T) {
	records, err := extractRaceAbilityBonuses(syncer.Document{
		"ability_bonuses": []any{
			map[string]any{"bonus": float64(2), "ability_score": map[string]any{"index": "dex"}},
		},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "dex", records[0]["ability_score_index"])
	assert.Equal(t, 2, records[0]["bonus"])
}

func TestExtractSubclassSpells(t *testing.T) {
	// The same spell repeats per prerequisite level upstream; extraction
	// keeps both, the replacer dedups on insert.
	records, err := extractSubclassSpells(syncer.Document{
		"spells": []any{
			map[string]any{"spell": map[string]any{"index": "faerie-fire"}},
			map[string]any{"spell": map[string]any{"index": "faerie-fire"}},
		},
	})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestIndexRefs(t *testing.T) {
	extract := indexRefs("condition_immunities", "condition_index")

	records, err := extract(syncer.Document{
		"condition_immunities": []any{
			map[string]any{"index": "charmed"},
			map[string]any{"index": "frightened"},
		},
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "charmed", records[0]["condition_index"])

	records, err = extract(syncer.Document{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestExpandClass(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetList", mock.Anything, "/api/classes/wizard/levels").Return([]map[string]any{
		{"level": float64(1), "prof_bonus": float64(2)},
	}, nil)
	client.On("Refs", mock.Anything, "/api/classes/wizard/spells").Return([]remote.Ref{
		{Index: "magic-missile", URL: "/api/spells/magic-missile"},
	}, nil)

	doc, err := expandClass(context.Background(), client, syncer.Document{
		"index":        "wizard",
		"class_levels": "/api/classes/wizard/levels",
		"spells":       "/api/classes/wizard/spells",
	})
	require.NoError(t, err)

	levels, err := extractClassLevels(doc)
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Equal(t, 1, levels[0]["level"])
	assert.Equal(t, 2, levels[0]["prof_bonus"])

	spells, err := extractClassSpells(doc)
	require.NoError(t, err)
	require.Len(t, spells, 1)
	assert.Equal(t, "magic-missile", spells[0]["spell_index"])
}

func TestExpandClass_Unavailable(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetList", mock.Anything, "/api/classes/wizard/levels").Return(nil, remote.ErrUnavailable)

	_, err := expandClass(context.Background(), client, syncer.Document{
		"class_levels": "/api/classes/wizard/levels",
	})
	assert.ErrorIs(t, err, remote.ErrUnavailable)
}
