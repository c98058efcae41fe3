package source

import "context"

// Source yields full configuration snapshots as flat string maps.
type Source interface {
	// Load returns the complete current snapshot. It may block on I/O and
	// must honor ctx cancellation where it does.
	Load(ctx context.Context) (map[string]string, error)
}

// Watcher is implemented by sources that can push change notifications.
// fn must be safe to call from the source's own goroutine.
type Watcher interface {
	Watch(fn func()) error
	Unwatch() error
}

// Func adapts a plain function to a Source.
type Func func(ctx context.Context) (map[string]string, error)

// Load implements Source.
func (f Func) Load(ctx context.Context) (map[string]string, error) { return f(ctx) }
