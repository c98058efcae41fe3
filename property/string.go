package property

import "github.com/evan-idocoding/dynconf/store"

// String is a typed accessor for a dynamic string value.
type String struct {
	Base[string]
}

// NewString constructs a String bound to the handle for name in st.
// A nil st means store.Default().
func NewString(st *store.Store, name string, def string) *String {
	p := &String{}
	InitString(p, st, name, def, p)
	return p
}

// InitString initializes the String part of an embedding type; see InitBool.
func InitString(p *String, st *store.Store, name string, def string, self Listener) {
	if self == nil {
		self = p
	}
	bind(&p.Base, st, name, def, self)
}

// Get returns the current string value, or the default when the store has
// none.
func (p *String) Get() string { return p.h.StringOr(p.def) }
