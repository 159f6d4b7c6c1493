package tagtext

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring a Wrapper.
type Option func(*WrapperConfig)

// WrapperConfig holds the configuration a Wrapper is built from. It replaces
// any process-wide default: every Wrapper gets its own copy.
type WrapperConfig struct {
	// AllowedChars is a regular expression matching the characters permitted
	// in delimiters.
	AllowedChars string
	// Opening and Closing form the wrap used when no delimiters are given.
	Opening string
	Closing string
	// Logger receives lifecycle and input-correction logs. Nil means no logging.
	Logger *zap.Logger
}

// DefaultWrapperConfig returns the default wrapper configuration.
func DefaultWrapperConfig() WrapperConfig {
	return WrapperConfig{
		AllowedChars: DefaultAllowedChars,
		Opening:      DefaultWrapOpening,
		Closing:      DefaultWrapClosing,
	}
}

// WithAllowedChars sets the allowed delimiter characters pattern.
// Default: `[\[\]\(\)<>{}]`
func WithAllowedChars(pattern string) Option {
	return func(c *WrapperConfig) {
		if pattern != stringEmpty {
			c.AllowedChars = pattern
		}
	}
}

// WithDefaultWrap sets the delimiters used when a Wrapper is created without
// explicit ones.
// Default: "[" and "]"
func WithDefaultWrap(opening, closing string) Option {
	return func(c *WrapperConfig) {
		if opening != stringEmpty {
			c.Opening = opening
		}
		if closing != stringEmpty {
			c.Closing = closing
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *WrapperConfig) {
		c.Logger = logger
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg WrapperConfig) Option {
	return func(c *WrapperConfig) {
		*c = cfg
	}
}

func buildConfig(opts []Option) WrapperConfig {
	cfg := DefaultWrapperConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}
