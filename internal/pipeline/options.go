package pipeline

import (
	"log/slog"

	"locstring-generator/internal/incremental"
	"locstring-generator/internal/spec"
)

// SpecObserver is called with every new or modified non-empty forest.
type SpecObserver func(forest *spec.Forest)

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default logger is built from the config
// and writes to stderr.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithStore persists the spec and diagnostics outputs in store.
func WithStore(store incremental.Store) Option {
	return func(g *Generator) {
		g.store = store
	}
}

// WithSpecObserver registers fn to receive changed forests.
func WithSpecObserver(fn SpecObserver) Option {
	return func(g *Generator) {
		g.observer = fn
	}
}
