// Package compendium mirrors the upstream SRD reference data (rules, races,
// classes, spells, monsters, equipment, ...) into the local database.
//
// Each of the 24 resources is described by a syncer.Descriptor: a field
// mapping from the upstream detail document to the parent table, plus child
// tables for the nested collections of the seven complex resources (classes,
// monsters, proficiencies, races, spells, subclasses, traits).
//
// The feature exposes one trigger endpoint per resource, GET
// /sync-<resource>, responding with {"success": bool, "message": string}.
package compendium
