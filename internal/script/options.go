package script

import (
	"log/slog"
	"time"

	"github.com/GasparKral/WinR/internal/event"
)

// DefaultTimeout bounds a single on_event call.
const DefaultTimeout = time.Second

// Option configures a Listener.
type Option func(*config)

type config struct {
	timeout  time.Duration
	logger   *slog.Logger
	onError  func(error)
	registry *event.Registry
}

func defaultConfig() config {
	return config{
		timeout: DefaultTimeout,
		logger:  slog.New(slog.DiscardHandler),
	}
}

// WithTimeout limits how long one on_event call may run. Zero disables the
// limit.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d >= 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used for script output and errors.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithErrorHandler sets a callback for script runtime errors. Errors are
// always logged as well.
func WithErrorHandler(fn func(error)) Option {
	return func(c *config) {
		c.onError = fn
	}
}

// WithRegistry exposes emit(kind, id) to the script, forwarding to reg.
func WithRegistry(reg *event.Registry) Option {
	return func(c *config) {
		c.registry = reg
	}
}
