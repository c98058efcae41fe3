// Package dynconf provides typed accessors over process-wide dynamic
// configuration: named string-keyed values that can be updated at runtime
// (for example from a polled file) without restarting the process.
//
// The root package binds everything to the process-default store. A
// property is cheap to construct and holds a default that applies until
// the store has a value:
//
//	var timeout = dynconf.Int64("timeout.ms", 30)
//
//	func handle() {
//		d := time.Duration(timeout.Get()) * time.Millisecond
//		// ...
//	}
//
// Updating the store changes what every accessor for that name reads:
//
//	dynconf.Set("timeout.ms", "250")
//
// # Building blocks
//
// When you need more control, the subpackages expose the layers directly:
//
//   - github.com/evan-idocoding/dynconf/store: named dynamic value handles
//     (per-name singletons, change callbacks, cached typed parsing)
//   - github.com/evan-idocoding/dynconf/property: typed property façades
//     and the callback-avoidance registry for custom variants
//   - github.com/evan-idocoding/dynconf/source: polled / watched sources
//     (YAML file source, poller with backoff)
//   - github.com/evan-idocoding/dynconf/ops: HTTP introspection and
//     mutation handlers for admin surfaces
package dynconf
