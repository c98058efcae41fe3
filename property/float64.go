package property

import "github.com/evan-idocoding/dynconf/store"

// Float64 is a typed accessor for a dynamic float64 value.
type Float64 struct {
	Base[float64]
}

// NewFloat64 constructs a Float64 bound to the handle for name in st.
// A nil st means store.Default().
func NewFloat64(st *store.Store, name string, def float64) *Float64 {
	p := &Float64{}
	InitFloat64(p, st, name, def, p)
	return p
}

// InitFloat64 initializes the Float64 part of an embedding type; see InitBool.
func InitFloat64(p *Float64, st *store.Store, name string, def float64, self Listener) {
	if self == nil {
		self = p
	}
	bind(&p.Base, st, name, def, self)
}

// Get returns the current float64 value, or the default when the store
// has no usable value.
func (p *Float64) Get() float64 { return p.h.Float64Or(p.def) }
