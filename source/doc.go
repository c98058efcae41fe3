// Package source feeds a dynamic value store from external configuration
// data.
//
// A Source produces full snapshots (flat string key/value maps); a Poller
// loads a Source on a fixed interval and applies each snapshot to a store,
// backing off after failures. Sources that can detect changes themselves
// (like File, which watches the file) implement Watcher and trigger an
// immediate reload instead of waiting for the next tick.
//
//	src, err := source.NewFile("app.yaml")
//	if err != nil { ... }
//	p := source.NewPoller(src, nil, source.WithInterval(30*time.Second))
//	go func() { _ = p.Run(ctx) }()
//
// Snapshots replace the store's contents: keys that disappear from the
// source are unset, so readers fall back to their defaults.
package source
