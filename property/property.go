package property

import (
	"fmt"
	"reflect"
	"time"

	"github.com/evan-idocoding/dynconf/store"
)

// Listener is the reaction capability: PropertyChanged is invoked when the
// bound value changes. Every property implements it; the built-ins as a
// no-op. A type embedding a built-in shadows it to become reactive.
type Listener interface {
	PropertyChanged()
}

// Base is the common part of every typed property. It holds a non-owning
// reference to the store handle and the immutable default value.
type Base[V any] struct {
	h   *store.Handle
	def V
}

// bind attaches b to the handle for name in st and applies the
// callback-avoidance policy to self's concrete type: types known to keep
// PropertyChanged a no-op skip callback registration, everything else gets
// exactly one callback dispatching to self.PropertyChanged.
func bind[V any](b *Base[V], st *store.Store, name string, def V, self Listener) {
	if st == nil {
		st = store.Default()
	}
	b.h = st.Handle(name)
	b.def = def
	if HasNoCallback(reflect.TypeOf(self)) {
		return
	}
	b.h.AddCallback(self.PropertyChanged)
}

// PropertyChanged is the reaction hook. The default does nothing.
func (b *Base[V]) PropertyChanged() {}

// Name returns the bound handle's name.
func (b *Base[V]) Name() string { return b.h.Name() }

// Default returns the default value the property was constructed with.
func (b *Base[V]) Default() V { return b.def }

// ChangedAt returns the time the bound value last changed. Zero means it
// has never changed.
func (b *Base[V]) ChangedAt() time.Time { return b.h.ChangedAt() }

// AddCallback registers fn directly on the underlying handle, independent
// of the property's own hook. A nil fn is ignored. Repeated calls register
// independent callbacks.
func (b *Base[V]) AddCallback(fn func()) { b.h.AddCallback(fn) }

// Handle returns the underlying store handle. The handle is shared and
// store-owned; the property only reads through it.
func (b *Base[V]) Handle() *store.Handle { return b.h }

// String renders the property name and its current raw value. When the
// store holds no usable value, the default's text form is shown instead.
func (b *Base[V]) String() string {
	return fmt.Sprintf("property: {name=%s, value=%s}", b.h.Name(), b.h.StringOr(fmt.Sprint(b.def)))
}
