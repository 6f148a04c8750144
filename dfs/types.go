package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures a DFS run.
type Option func(*Options)

// Options holds DFS parameters.
type Options struct {
	Ctx context.Context

	// OnVisit runs once per vertex in pre-order; an error aborts the walk.
	OnVisit func(id string, depth int) error
}

// DefaultOptions returns a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a pre-order hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds visit order and DFS-tree depth of every reached vertex.
type Result struct {
	Order []string
	Depth map[string]int
}
