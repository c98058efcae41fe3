package store

import (
	"sync"
	"sync/atomic"
	"time"
)

// Handle is a named, mutable, thread-safe holder of a current raw value.
//
// Handles are created by Store.Handle and live for the store's lifetime.
// All reads are lock-free.
type Handle struct {
	name string

	// raw is the current value; nil means "no value".
	raw atomic.Pointer[string]

	// version increments on every set/unset; parse caches key off it.
	version atomic.Uint64

	// changedAtUnixMilli is the last change time; zero means never changed.
	changedAtUnixMilli atomic.Int64

	// callbacks is a copy-on-write list. cbMu serializes registrations;
	// firing only loads the current snapshot.
	cbMu      sync.Mutex
	callbacks atomic.Pointer[[]func()]

	cInt      cached[int]
	cInt64    cached[int64]
	cFloat64  cached[float64]
	cBool     cached[bool]
	cDuration cached[time.Duration]
}

func newHandle(name string) *Handle {
	return &Handle{name: name}
}

// Name returns the handle's name.
func (h *Handle) Name() string { return h.name }

// Lookup returns the current raw value and whether one is present.
func (h *Handle) Lookup() (string, bool) {
	p := h.raw.Load()
	if p == nil {
		return "", false
	}
	return *p, true
}

// StringOr returns the current raw value, or def if none is present.
func (h *Handle) StringOr(def string) string {
	if v, ok := h.Lookup(); ok {
		return v
	}
	return def
}

// IntOr returns the current value parsed as int, or def if the value is
// missing or unparseable.
func (h *Handle) IntOr(def int) int {
	if v, ok := h.cInt.get(h, parseInt); ok {
		return v
	}
	return def
}

// Int64Or returns the current value parsed as int64, or def if the value
// is missing or unparseable.
func (h *Handle) Int64Or(def int64) int64 {
	if v, ok := h.cInt64.get(h, parseInt64); ok {
		return v
	}
	return def
}

// Float64Or returns the current value parsed as float64, or def if the
// value is missing or unparseable.
func (h *Handle) Float64Or(def float64) float64 {
	if v, ok := h.cFloat64.get(h, parseFloat64); ok {
		return v
	}
	return def
}

// BoolOr returns the current value parsed as bool, or def if the value is
// missing or unparseable.
//
// Parsing is intentionally slightly lenient and accepts common forms
// (case-insensitive): true/false, t/f, 1/0, yes/no, y/n, on/off.
func (h *Handle) BoolOr(def bool) bool {
	if v, ok := h.cBool.get(h, parseBoolLoose); ok {
		return v
	}
	return def
}

// DurationOr returns the current value parsed as a Go duration string,
// or def if the value is missing or unparseable.
func (h *Handle) DurationOr(def time.Duration) time.Duration {
	if v, ok := h.cDuration.get(h, parseDuration); ok {
		return v
	}
	return def
}

// ChangedAt returns the time of the last set/unset. Zero means the handle
// has never changed.
func (h *Handle) ChangedAt() time.Time {
	ms := h.changedAtUnixMilli.Load()
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

// AddCallback registers fn to run whenever the handle's value changes.
//
// A nil fn is ignored. Multiple registrations of the same function are
// kept as independent callbacks; there is no removal. Registration never
// blocks a concurrent fire.
func (h *Handle) AddCallback(fn func()) {
	if fn == nil {
		return
	}
	h.cbMu.Lock()
	defer h.cbMu.Unlock()
	var next []func()
	if old := h.callbacks.Load(); old != nil {
		next = append(next, *old...)
	}
	next = append(next, fn)
	h.callbacks.Store(&next)
}

// CallbackCount returns the number of registered callbacks.
func (h *Handle) CallbackCount() int {
	if cbs := h.callbacks.Load(); cbs != nil {
		return len(*cbs)
	}
	return 0
}

func (h *Handle) set(value string) {
	h.raw.Store(&value)
	h.version.Add(1)
	h.changedAtUnixMilli.Store(time.Now().UnixMilli())
	h.fire()
}

func (h *Handle) unset() {
	h.raw.Store(nil)
	h.version.Add(1)
	h.changedAtUnixMilli.Store(time.Now().UnixMilli())
	h.fire()
}

// fire invokes the current callback snapshot. Order is registration order.
// A panicking callback is recovered so the remaining callbacks still run.
func (h *Handle) fire() {
	cbs := h.callbacks.Load()
	if cbs == nil {
		return
	}
	for _, fn := range *cbs {
		safeCall(fn)
	}
}

func safeCall(fn func()) {
	defer func() { _ = recover() }()
	fn()
}
