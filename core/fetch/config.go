package fetch

// Config holds tuning for network fetches.
type Config struct {
	// Concurrency caps the number of downloads in flight per category.
	Concurrency int `mapstructure:"concurrency" default:"10"`
	// TimeoutSeconds bounds connection setup and time to first response byte.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// IconSize is the bounding box icons are resized into.
	IconSize int `mapstructure:"icon_size" default:"177"`
}
