package weakcall

import (
	"fmt"
	"reflect"
)

// FuncCaller wraps a plain function value. A declared function is static in
// Go and cannot be reclaimed, so a FuncCaller built from one is permanently
// alive. Function literals and method values close over state this package
// cannot weakly capture; they are accepted only with WithPin, which holds
// them strongly and likewise never expires.
type FuncCaller struct {
	base
	orig  any
	ident uintptr
	inv   invoker
}

// Func wraps fn, which must be a non-nil func value. Method values and
// function literals fail with ErrUnsupported unless WithPin is given: for a
// method, wrap the receiver with Method instead so it stays weakly held.
func Func(fn any, opts ...Option) (*FuncCaller, error) {
	cfg := buildConfig(opts)
	rv := reflect.ValueOf(fn)
	if !rv.IsValid() || rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, fmt.Errorf("%w: %T is not a func", ErrUnsupported, fn)
	}
	if !cfg.pin {
		name := funcName(rv)
		if isMethodValue(name) {
			return nil, fmt.Errorf(
				"%w: %s is a method value; use Method to hold its receiver weakly, or WithPin to hold it strongly",
				ErrUnsupported, name)
		}
		if isClosure(name) {
			return nil, fmt.Errorf(
				"%w: %s is a function literal with no weakly capturable receiver; use WithPin to hold it strongly",
				ErrUnsupported, name)
		}
	}
	return &FuncCaller{
		base:  base{maxArgs: cfg.maxArgs},
		orig:  fn,
		ident: funcIdent(fn),
		inv:   newInvoker(rv, false),
	}, nil
}

func (c *FuncCaller) Callback(args []any) bool {
	c.inv.call(reflect.Value{}, c.prune(args))
	return false
}

func (c *FuncCaller) Call(args ...any) ([]any, error) {
	return c.inv.call(reflect.Value{}, c.prune(args)), nil
}

// Slot returns the identical func value the caller was built from.
func (c *FuncCaller) Slot() (any, error) {
	return c.orig, nil
}

func (c *FuncCaller) IsAlive() bool {
	return true
}

func (c *FuncCaller) Key() Key {
	return Key{Kind: KindFunc, Ident: c.ident}
}

func (c *FuncCaller) Equal(other Callable) bool {
	return equalKeys(c, other)
}
