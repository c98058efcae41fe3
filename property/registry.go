package property

import (
	"reflect"
	"sync"
)

// noCallback records the concrete property types known to keep
// PropertyChanged a no-op. Keyed by reflect.Type, so membership is
// decided by type identity, never by name or structural equality.
// Entries are only ever added.
var noCallback sync.Map // reflect.Type -> struct{}

// The built-ins never override the hook, so no instance of them needs a
// handle callback. Registered before any property can be constructed.
func init() {
	RegisterNoCallback[*Bool]()
	RegisterNoCallback[*Int]()
	RegisterNoCallback[*Int64]()
	RegisterNoCallback[*Float64]()
	RegisterNoCallback[*String]()
	RegisterNoCallback[*Duration]()
}

// RegisterNoCallback marks T as never overriding PropertyChanged.
// Constructing a T afterwards skips handle callback registration.
//
// Call it for read-only custom variants, the way the built-ins do. Never
// call it for a type that shadows PropertyChanged: its hook would stop
// firing. Registration is monotonic; there is no way to unregister.
func RegisterNoCallback[T Listener]() {
	var zero T
	RegisterNoCallbackType(reflect.TypeOf(zero))
}

// RegisterNoCallbackType is the non-generic form of RegisterNoCallback.
// A nil type is ignored.
func RegisterNoCallbackType(t reflect.Type) {
	if t == nil {
		return
	}
	noCallback.Store(t, struct{}{})
}

// HasNoCallback reports whether t is registered as never overriding the
// hook.
func HasNoCallback(t reflect.Type) bool {
	if t == nil {
		return false
	}
	_, ok := noCallback.Load(t)
	return ok
}
