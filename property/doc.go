// Package property provides typed accessors over the dynamic value store:
// per-property façades that bind a name and a default value to a store
// handle and expose a typed Get.
//
// # Built-in properties
//
// The built-in variants are Bool, Int, Int64, Float64, String and
// Duration. They are bare typed readers:
//
//	timeout := property.NewInt64(nil, "timeout.ms", 30)
//	_ = timeout.Get() // current value, or 30 while the store has none
//
// A nil store binds the property to store.Default().
//
// # Reacting to changes
//
// A type that embeds a built-in property may shadow PropertyChanged to
// react whenever the bound value is updated:
//
//	type sampleRate struct {
//		property.Float64
//		// ...
//	}
//
//	func newSampleRate(st *store.Store, name string, def float64) *sampleRate {
//		p := &sampleRate{}
//		property.InitFloat64(&p.Float64, st, name, def, p)
//		return p
//	}
//
//	func (p *sampleRate) PropertyChanged() { /* re-derive state */ }
//
// Passing the outermost value as self is what routes change notifications
// to the shadowed hook.
//
// # Callback-avoidance policy
//
// Registering a change callback on a handle mutates a shared copy-on-write
// list; at the scale of thousands of property instances that cost is pure
// waste for the many variants that only ever read. The package therefore
// keeps a process-wide registry of concrete types whose PropertyChanged is
// known to be a no-op. The built-ins are pre-registered. At construction,
// a property whose concrete type is in the registry skips callback
// registration entirely; any other type gets exactly one callback that
// invokes its PropertyChanged.
//
// A reactive type must NOT be registered. A read-only custom variant may
// opt in with RegisterNoCallback; forgetting to do so costs one callback
// registration per instance but is never incorrect.
package property
