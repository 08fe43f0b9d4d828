package viewer

// Config holds viewer start-up options.
type Config struct {
	// Preset is the preset ID to open with; empty selects the default.
	Preset string
	// Seed for the first level. Takes precedence over Text.
	Seed string
	// Text is hashed into a seed when Seed is empty. With neither set a
	// random seed is generated.
	Text string
}
