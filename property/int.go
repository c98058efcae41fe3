package property

import "github.com/evan-idocoding/dynconf/store"

// Int is a typed accessor for a dynamic int value.
type Int struct {
	Base[int]
}

// NewInt constructs an Int bound to the handle for name in st.
// A nil st means store.Default().
func NewInt(st *store.Store, name string, def int) *Int {
	p := &Int{}
	InitInt(p, st, name, def, p)
	return p
}

// InitInt initializes the Int part of an embedding type; see InitBool.
func InitInt(p *Int, st *store.Store, name string, def int, self Listener) {
	if self == nil {
		self = p
	}
	bind(&p.Base, st, name, def, self)
}

// Get returns the current int value, or the default when the store has no
// usable value.
func (p *Int) Get() int { return p.h.IntOr(p.def) }
