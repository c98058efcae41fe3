// Package store implements the process-wide dynamic value store: named,
// mutable, thread-safe holders of configuration values that can be updated
// at runtime without restarting the process.
//
// # Handles
//
// A Handle is the unit of the store. It is created on first lookup by name
// and lives for the store's lifetime:
//
//	st := store.Default()
//	h := st.Handle("timeout.ms")
//
// Looking up the same name always returns the same *Handle, so any number
// of readers share one cell. A handle holds at most one current raw string
// value (or no value at all), the timestamp of its last change, and a list
// of change callbacks.
//
// # Reads
//
// Reads are lock-free and never fail: a missing or unparseable value
// resolves to the caller-supplied fallback.
//
//	timeout := h.Int64Or(30)
//
// Typed reads cache the parsed value per handle and re-parse only after
// the handle changes.
//
// # Writes and callbacks
//
// Set / Unset / Apply update handles and fire the registered callbacks
// synchronously, exactly once per update. The callback list is
// copy-on-write: registering a callback never blocks a concurrent fire,
// and a fire always iterates a complete snapshot of the list. A panicking
// callback is recovered so it cannot disrupt the remaining callbacks.
//
// Callbacks must be fast and must not block; a slow callback delays the
// write that triggered it. Callbacks must not call the store's write
// APIs: writes are serialized per store, so a re-entrant write deadlocks.
package store
