package property

import "github.com/evan-idocoding/dynconf/store"

// Bool is a typed accessor for a dynamic bool value.
type Bool struct {
	Base[bool]
}

// NewBool constructs a Bool bound to the handle for name in st.
// A nil st means store.Default(). It never fails: looking up an existing
// name reuses the same handle.
func NewBool(st *store.Store, name string, def bool) *Bool {
	p := &Bool{}
	InitBool(p, st, name, def, p)
	return p
}

// InitBool initializes the Bool part of an embedding type. self must be
// the outermost value so the callback-avoidance policy sees its concrete
// type and change notifications dispatch to its PropertyChanged. A nil
// self means p itself.
func InitBool(p *Bool, st *store.Store, name string, def bool, self Listener) {
	if self == nil {
		self = p
	}
	bind(&p.Base, st, name, def, self)
}

// Get returns the current bool value. A missing or unparseable value
// resolves to the default. Safe to call concurrently with updates.
func (p *Bool) Get() bool { return p.h.BoolOr(p.def) }
