// Package ops provides operational HTTP handlers over a dynamic value
// store: a sorted snapshot of all property handles, single-handle lookup,
// and (when explicitly enabled) set/unset endpoints for runtime changes.
//
// Handlers are assembled as a chi router:
//
//	r := ops.Routes(store.Default(),
//		ops.WithWrites(),
//		ops.WithAllowPrefixes("feature.", "limits."),
//	)
//	mux.Mount("/-/config", r)
//
// # Security model
//
// Reads expose every property name and raw value, so mount the routes
// behind whatever authentication protects the rest of your admin surface.
// Writes are off by default; when enabled, name guards are fail-closed:
// WithAllowPrefixes with no usable prefix denies everything.
//
// Responses render as text by default (one stable line per property) and
// as JSON with ?format=json or WithDefaultFormat(FormatJSON).
package ops
