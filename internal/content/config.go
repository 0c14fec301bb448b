package content

// Config holds lesson generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// GenerateAttempts is how many times generation is retried when the
	// model returns content that fails structural validation.
	GenerateAttempts int
}

// DefaultConfig returns sensible defaults for lesson generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:        4096,
		Temperature:      0.6,
		GenerateAttempts: 3,
	}
}
