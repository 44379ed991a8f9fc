package remote

// Config holds configuration for the upstream SRD API client.
type Config struct {
	// BaseURL is the root of the reference API (no trailing slash).
	BaseURL string `mapstructure:"base_url" default:"https://www.dnd5eapi.co"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
