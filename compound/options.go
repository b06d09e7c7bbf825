package compound

import (
	"io"
	"log/slog"
)

// Option customizes a Generator at construction time.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{logger: discardLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WithLogger routes the generator's debug output to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("compound: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
