package store

import (
	"log/slog"

	"github.com/iburimskiy/fractal-trees/internal/fractal"
	"github.com/iburimskiy/fractal-trees/internal/logging"
)

// Option configures a State.
type Option func(*options)

type options struct {
	logger *slog.Logger
	params fractal.Params
}

func defaultOptions() options {
	return options{
		logger: logging.Nop(),
		params: fractal.DefaultParams(),
	}
}

// WithLogger sets the logger. Nil keeps logging disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = logging.OrNop(l)
	}
}

// WithParams sets the initial parameters. They are clamped like any update.
func WithParams(p fractal.Params) Option {
	return func(o *options) {
		o.params = p.Clamp()
	}
}
