package app

// Config holds runtime configuration for one extraction run.
type Config struct {
	InputPath  string
	OutputPath string

	// Input interpretation
	Format   string
	Encoding string

	// Dedupe is "adjacent" (default) or "global".
	Dedupe string

	// Behavior
	NoBanner bool
	Verbose  bool
}
