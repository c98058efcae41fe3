package property

import "github.com/evan-idocoding/dynconf/store"

// Int64 is a typed accessor for a dynamic int64 value.
type Int64 struct {
	Base[int64]
}

// NewInt64 constructs an Int64 bound to the handle for name in st.
// A nil st means store.Default().
func NewInt64(st *store.Store, name string, def int64) *Int64 {
	p := &Int64{}
	InitInt64(p, st, name, def, p)
	return p
}

// InitInt64 initializes the Int64 part of an embedding type; see InitBool.
func InitInt64(p *Int64, st *store.Store, name string, def int64, self Listener) {
	if self == nil {
		self = p
	}
	bind(&p.Base, st, name, def, self)
}

// Get returns the current int64 value, or the default when the store has
// no usable value.
func (p *Int64) Get() int64 { return p.h.Int64Or(p.def) }
