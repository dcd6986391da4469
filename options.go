package moveargs

// DefaultMaxDepth is the default limit on type tag nesting.
const DefaultMaxDepth = 32

// ParseOption configures ParseTypeTag.
type ParseOption func(*parseConfig)

// parseConfig holds configuration for a single parse.
type parseConfig struct {
	maxDepth int
	typeArgs []TypeTag
}

// defaultParseConfig returns the default parse configuration.
func defaultParseConfig() *parseConfig {
	return &parseConfig{
		maxDepth: DefaultMaxDepth,
	}
}

// WithTypeArgs resolves generic placeholders: T0 becomes tags[0], T1 becomes
// tags[1] and so on. Without this option any placeholder is an invalid type tag.
func WithTypeArgs(tags ...TypeTag) ParseOption {
	return func(c *parseConfig) {
		c.typeArgs = tags
	}
}

// WithMaxDepth limits how deeply vectors and struct type arguments may nest.
// Values below 1 are ignored.
func WithMaxDepth(max int) ParseOption {
	return func(c *parseConfig) {
		if max < 1 {
			return
		}
		c.maxDepth = max
	}
}
