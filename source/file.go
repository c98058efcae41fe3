package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrNoPath is returned when a File source is created without a path.
var ErrNoPath = errors.New("source: empty file path")

// File is a Source backed by a YAML file. Nested keys are flattened with
// "." (server: {port: 80} -> "server.port"), scalars are rendered through
// their string form.
//
// File also implements Watcher via an OS file watch, so edits to the file
// trigger an immediate reload when used with a Poller.
type File struct {
	path     string
	provider *file.File
	parser   koanf.Parser
}

// NewFile creates a File source for path. The file does not need to exist
// yet; a missing file surfaces as a Load error.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	return &File{
		path:     path,
		provider: file.Provider(path),
		parser:   yaml.Parser(),
	}, nil
}

// Path returns the configured file path.
func (f *File) Path() string { return f.path }

// Load implements Source.
func (f *File) Load(_ context.Context) (map[string]string, error) {
	k := koanf.New(".")
	if err := k.Load(f.provider, f.parser); err != nil {
		return nil, fmt.Errorf("source: load %q: %w", f.path, err)
	}
	all := k.All()
	snap := make(map[string]string, len(all))
	for key, v := range all {
		snap[key] = renderScalar(v)
	}
	return snap, nil
}

// Watch implements Watcher. Watch errors from the underlying provider are
// swallowed; the next poll tick picks the change up anyway.
func (f *File) Watch(fn func()) error {
	return f.provider.Watch(func(_ interface{}, err error) {
		if err != nil {
			return
		}
		fn()
	})
}

// Unwatch implements Watcher.
func (f *File) Unwatch() error { return f.provider.Unwatch() }

func renderScalar(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}
