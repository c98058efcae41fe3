package dynconf

import (
	"time"

	"github.com/evan-idocoding/dynconf/property"
	"github.com/evan-idocoding/dynconf/store"
)

// Bool returns a bool property for name on the default store.
func Bool(name string, def bool) *property.Bool {
	return property.NewBool(store.Default(), name, def)
}

// Int returns an int property for name on the default store.
func Int(name string, def int) *property.Int {
	return property.NewInt(store.Default(), name, def)
}

// Int64 returns an int64 property for name on the default store.
func Int64(name string, def int64) *property.Int64 {
	return property.NewInt64(store.Default(), name, def)
}

// Float64 returns a float64 property for name on the default store.
func Float64(name string, def float64) *property.Float64 {
	return property.NewFloat64(store.Default(), name, def)
}

// String returns a string property for name on the default store.
func String(name string, def string) *property.String {
	return property.NewString(store.Default(), name, def)
}

// Duration returns a duration property for name on the default store.
func Duration(name string, def time.Duration) *property.Duration {
	return property.NewDuration(store.Default(), name, def)
}

// Set updates name on the default store and fires its change callbacks.
func Set(name, value string) {
	store.Default().Set(name, value)
}

// Unset clears name on the default store; readers fall back to their
// defaults.
func Unset(name string) {
	store.Default().Unset(name)
}

// Apply replaces the default store's contents with a full snapshot.
func Apply(snapshot map[string]string) {
	store.Default().Apply(snapshot)
}
