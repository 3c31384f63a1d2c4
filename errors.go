package weakcall

import (
	"errors"
	"fmt"
)

var (
	// ErrExpired is returned by Call and Slot when the weakly held referent
	// has been reclaimed. Dispatch loops should use Callback instead, which
	// reports death through its return value.
	ErrExpired = errors.New("weakcall: referent has been released")

	// ErrUnsupported is returned at construction when a callable's receiver
	// cannot be weakly captured and no pin was requested, or when the named
	// method, field, or key does not fit the target's shape.
	ErrUnsupported = errors.New("weakcall: unsupported callable")
)

func panicToError(e any) error {
	switch v := e.(type) {
	case error:
		return v
	case string:
		return errors.New(v)
	default:
		return fmt.Errorf("panic: %v", v)
	}
}
