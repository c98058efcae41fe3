package store

import "sync/atomic"

// cached memoizes one parsed view of a handle's raw value, keyed by the
// handle's version counter. Reads are lock-free; a racing update at worst
// causes one extra re-parse on the next read.
type cached[T any] struct {
	p atomic.Pointer[parsed[T]]
}

type parsed[T any] struct {
	version uint64
	val     T
	ok      bool
}

// get returns the parsed value for the handle's current version,
// recomputing it via parse when the cache is stale. ok is false when the
// handle has no value or parse fails.
//
// The version is read before the raw value: if an update lands in
// between, the fresher parse is stored under the older version and simply
// recomputed on the next read. The stale direction never happens.
func (c *cached[T]) get(h *Handle, parse func(string) (T, error)) (T, bool) {
	v := h.version.Load()
	if p := c.p.Load(); p != nil && p.version == v {
		return p.val, p.ok
	}

	out := &parsed[T]{version: v}
	if raw, present := h.Lookup(); present {
		if val, err := parse(raw); err == nil {
			out.val = val
			out.ok = true
		}
	}
	c.p.Store(out)
	return out.val, out.ok
}
