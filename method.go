package weakcall

import (
	"fmt"
	"reflect"
)

// MethodCaller weakly references a method's receiver and stores the method
// name, re-resolving the bound method on demand instead of keeping it alive.
// The method func itself belongs to the receiver's type and is captured once
// at construction; only the receiver is weak.
type MethodCaller[T any] struct {
	base
	ref   ref[T]
	ident uintptr
	name  string
	inv   invoker
}

// Method wraps the exported method named name on recv without keeping recv
// alive. The method is looked up on *T, so both pointer- and value-receiver
// methods qualify.
func Method[T any](recv *T, name string, opts ...Option) (*MethodCaller[T], error) {
	if recv == nil {
		return nil, fmt.Errorf("%w: nil receiver", ErrUnsupported)
	}
	cfg := buildConfig(opts)
	m, ok := reflect.TypeOf(recv).MethodByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %T has no method %q", ErrUnsupported, recv, name)
	}
	return &MethodCaller[T]{
		base:  base{maxArgs: cfg.maxArgs},
		ref:   newRef(recv, &cfg),
		ident: refIdent(recv),
		name:  name,
		inv:   newInvoker(m.Func, true),
	}, nil
}

func (c *MethodCaller[T]) Callback(args []any) bool {
	recv := c.ref.value()
	if recv == nil {
		return true
	}
	// Calling the type's func with the receiver prepended skips rebuilding
	// the bound method value on every dispatch.
	c.inv.call(reflect.ValueOf(recv), c.prune(args))
	return false
}

func (c *MethodCaller[T]) Call(args ...any) ([]any, error) {
	recv := c.ref.value()
	if recv == nil {
		return nil, fmt.Errorf("%w: method %q", ErrExpired, c.name)
	}
	return c.inv.call(reflect.ValueOf(recv), c.prune(args)), nil
}

// Slot reconstructs the bound method value from the live receiver.
func (c *MethodCaller[T]) Slot() (any, error) {
	recv := c.ref.value()
	if recv == nil {
		return nil, fmt.Errorf("%w: method %q", ErrExpired, c.name)
	}
	return reflect.ValueOf(recv).MethodByName(c.name).Interface(), nil
}

func (c *MethodCaller[T]) IsAlive() bool {
	return c.ref.alive()
}

func (c *MethodCaller[T]) Key() Key {
	return Key{Kind: KindMethod, Ident: c.ident, Slot: c.name}
}

func (c *MethodCaller[T]) Equal(other Callable) bool {
	return equalKeys(c, other)
}
