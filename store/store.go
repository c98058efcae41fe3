package store

import (
	"sort"
	"sync"
)

// Store holds named dynamic value handles.
//
// It is safe for concurrent use. The zero value is ready to use.
type Store struct {
	handles sync.Map // string -> *Handle

	// writeMu serializes writers (Set/Unset/Apply) so that snapshot diffs
	// do not interleave. Reads and Handle lookups never take it.
	writeMu sync.Mutex
}

// New creates a new Store.
func New() *Store {
	return &Store{}
}

var (
	defaultOnce sync.Once
	defaultS    *Store
)

// Default returns the process-wide default Store instance.
func Default() *Store {
	defaultOnce.Do(func() { defaultS = New() })
	return defaultS
}

// Handle returns the handle for name, creating it on first lookup.
//
// It is idempotent: the same name always yields the same *Handle for the
// store's lifetime, so concurrent lookups under one name share one cell.
func (s *Store) Handle(name string) *Handle {
	if h, ok := s.handles.Load(name); ok {
		return h.(*Handle)
	}
	h, _ := s.handles.LoadOrStore(name, newHandle(name))
	return h.(*Handle)
}

// Lookup returns the handle for name if one exists. Unlike Handle it
// never creates one, so it is safe on read paths that must not grow
// the store.
func (s *Store) Lookup(name string) (*Handle, bool) {
	h, ok := s.handles.Load(name)
	if !ok {
		return nil, false
	}
	return h.(*Handle), true
}

// Set updates the value for name, creating the handle if needed.
//
// It stamps the change time, invalidates cached parses and fires the
// handle's callbacks synchronously, exactly once.
func (s *Store) Set(name, value string) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.Handle(name).set(value)
}

// Unset clears the value for name. Reads fall back to their defaults
// afterwards. It is a no-op if the handle does not exist or has no value.
func (s *Store) Unset(name string) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	h, ok := s.Lookup(name)
	if !ok {
		return
	}
	if _, present := h.Lookup(); present {
		h.unset()
	}
}

// Apply replaces the store's contents with a full snapshot.
//
// Keys absent from the snapshot are unset; keys whose value differs are
// set. Unchanged keys do not fire callbacks. Handles themselves are never
// removed.
func (s *Store) Apply(snapshot map[string]string) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.handles.Range(func(k, v any) bool {
		h := v.(*Handle)
		if _, keep := snapshot[k.(string)]; keep {
			return true
		}
		if _, present := h.Lookup(); present {
			h.unset()
		}
		return true
	})

	for name, value := range snapshot {
		h := s.Handle(name)
		if cur, present := h.Lookup(); !present || cur != value {
			h.set(value)
		}
	}
}

// Names returns the names of all handles, sorted, whether or not they
// currently hold a value.
func (s *Store) Names() []string {
	var names []string
	s.handles.Range(func(k, _ any) bool {
		names = append(names, k.(string))
		return true
	})
	sort.Strings(names)
	return names
}
