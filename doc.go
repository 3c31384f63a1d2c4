// Package weakcall provides non-owning references to callables: plain
// functions, bound methods, partial applications, and two write-sinks that
// assign into a weakly held container or struct field. Wrapping a callable
// never keeps its receiver alive; once the receiver is reclaimed, death is
// observable through the contract instead of causing dangling calls.
//
// The package is the per-entry primitive an observer registry is built on.
// A registry wraps each subscriber with New (or one of the typed
// constructors), invokes Callback during dispatch, and prunes entries for
// which Callback reports a dead referent:
//
//	for key, c := range registry {
//		if c.Callback(args) {
//			delete(registry, key)
//		}
//	}
//
// Callback is the tolerant entry point for bulk dispatch. Call and Slot are
// the strict ones: they fail with ErrExpired when the referent is gone.
// Panics raised by the wrapped target itself always propagate unchanged.
//
// No registry, locking, or scheduling is provided here. Concurrent use is
// safe only to the extent the referent and its methods are; this package
// adds no synchronization of its own.
package weakcall
