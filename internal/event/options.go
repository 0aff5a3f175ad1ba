package event

import "log/slog"

// DefaultMaxDepth is the default limit on nested Emit calls.
const DefaultMaxDepth = 32

// Option configures a Registry.
type Option func(*registryConfig)

// registryConfig contains configuration for the registry.
type registryConfig struct {
	// maxDepth is the maximum number of nested Emit calls.
	maxDepth int

	// logger receives pruning and re-entrancy diagnostics.
	logger *slog.Logger
}

// defaultRegistryConfig returns the default configuration.
func defaultRegistryConfig() registryConfig {
	return registryConfig{
		maxDepth: DefaultMaxDepth,
		logger:   slog.New(slog.DiscardHandler),
	}
}

// WithMaxDepth sets the maximum emission nesting depth.
// Values below one are ignored.
func WithMaxDepth(depth int) Option {
	return func(c *registryConfig) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// WithLogger sets the logger for registry diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *registryConfig) {
		if l != nil {
			c.logger = l
		}
	}
}
