package syncer

// Config holds tuning knobs for the sync engine.
type Config struct {
	// Concurrency bounds the number of in-flight item syncs on the generic
	// path. Enriched resources are always processed one item at a time.
	Concurrency int `mapstructure:"concurrency" default:"8"`
}
