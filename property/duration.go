package property

import (
	"time"

	"github.com/evan-idocoding/dynconf/store"
)

// Duration is a typed accessor for a dynamic duration value, stored in Go
// duration syntax (e.g. "800ms", "1m30s").
type Duration struct {
	Base[time.Duration]
}

// NewDuration constructs a Duration bound to the handle for name in st.
// A nil st means store.Default().
func NewDuration(st *store.Store, name string, def time.Duration) *Duration {
	p := &Duration{}
	InitDuration(p, st, name, def, p)
	return p
}

// InitDuration initializes the Duration part of an embedding type; see InitBool.
func InitDuration(p *Duration, st *store.Store, name string, def time.Duration, self Listener) {
	if self == nil {
		self = p
	}
	bind(&p.Base, st, name, def, self)
}

// Get returns the current duration value, or the default when the store
// has no usable value.
func (p *Duration) Get() time.Duration { return p.h.DurationOr(p.def) }
