package compendium

import (
	"srd-mirror/core/syncer"
)

// syncOrder is the dependency-respecting trigger order: plain lookup tables
// first, then the resources whose child rows reference them.
var syncOrder = []string{
	"ability-scores",
	"alignments",
	"conditions",
	"damage-types",
	"magic-schools",
	"weapon-properties",
	"languages",
	"skills",
	"rule-sections",
	"rules",
	"equipment-categories",
	"equipment",
	"magic-items",
	"feats",
	"proficiencies",
	"classes",
	"subclasses",
	"races",
	"subraces",
	"traits",
	"features",
	"backgrounds",
	"spells",
	"monsters",
}

// Registry returns every resource descriptor, keyed by remote resource name.
func Registry() map[string]syncer.Descriptor {
	descriptors := make(map[string]syncer.Descriptor, len(syncOrder))

	for _, d := range simpleDescriptors() {
		descriptors[d.Resource] = d
	}
	for _, d := range []syncer.Descriptor{
		classDescriptor(),
		monsterDescriptor(),
		proficiencyDescriptor(),
		raceDescriptor(),
		spellDescriptor(),
		subclassDescriptor(),
		traitDescriptor(),
	} {
		descriptors[d.Resource] = d
	}

	return descriptors
}

// indexRefs builds an ExtractFunc that pulls the index of every reference in
// the named nested list into one child column.
func indexRefs(key, column string) syncer.ExtractFunc {
	return func(doc syncer.Document) ([]syncer.Record, error) {
		refs := doc.Docs(key)
		records := make([]syncer.Record, 0, len(refs))
		for _, ref := range refs {
			index, err := ref.Require("index")
			if err != nil {
				return nil, err
			}
			records = append(records, syncer.Record{column: index})
		}
		return records, nil
	}
}

// requireKeyAndName is the shared prologue of every mapper: the natural key
// and display name are the two fields the schema always needs.
func requireKeyAndName(doc syncer.Document) (string, string, error) {
	index, err := doc.Require("index")
	if err != nil {
		return "", "", err
	}
	name, err := doc.Require("name")
	if err != nil {
		return "", "", err
	}
	return index, name, nil
}
