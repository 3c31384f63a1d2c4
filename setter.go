package weakcall

import (
	"fmt"
	"reflect"
)

// packValue mirrors the single-value contract of the write-sinks: one
// argument writes that value, several write the slice itself.
func packValue(args []any) any {
	if len(args) == 1 {
		return args[0]
	}
	return args
}

// SetitemCaller writes values under a fixed key into a weakly held map (or at
// a fixed index into a slice) without keeping the container alive. It serves
// "write the result into a weakly held slot" callback patterns where the
// callback's whole job is the assignment.
type SetitemCaller[T any] struct {
	base
	ref   ref[T]
	ident uintptr
	key   any
}

// Setitem returns a caller that performs (*obj)[key] = value. T must be a map
// type whose key accepts key, or a slice/array type with an int key.
func Setitem[T any](obj *T, key any, opts ...Option) (*SetitemCaller[T], error) {
	if obj == nil {
		return nil, fmt.Errorf("%w: nil container", ErrUnsupported)
	}
	cfg := buildConfig(opts)
	t := reflect.TypeOf(obj).Elem()
	switch t.Kind() {
	case reflect.Map:
		rk := reflect.ValueOf(key)
		if !rk.IsValid() || !rk.Type().AssignableTo(t.Key()) {
			return nil, fmt.Errorf("%w: key %v does not fit %s", ErrUnsupported, key, t)
		}
	case reflect.Slice, reflect.Array:
		if _, ok := key.(int); !ok {
			return nil, fmt.Errorf("%w: %s index must be int, got %T", ErrUnsupported, t.Kind(), key)
		}
	default:
		return nil, fmt.Errorf("%w: %s does not support item assignment", ErrUnsupported, t)
	}
	return &SetitemCaller[T]{
		base:  base{maxArgs: cfg.maxArgs},
		ref:   newRef(obj, &cfg),
		ident: refIdent(obj),
		key:   key,
	}, nil
}

func (c *SetitemCaller[T]) set(obj *T, v any) {
	rv := reflect.ValueOf(obj).Elem()
	switch rv.Kind() {
	case reflect.Map:
		rv.SetMapIndex(reflect.ValueOf(c.key), conformTo(rv.Type().Elem(), v))
	default:
		rv.Index(c.key.(int)).Set(conformTo(rv.Type().Elem(), v))
	}
}

// Callback writes the single value in args under the stored key, or reports
// true without writing when the container has been reclaimed.
func (c *SetitemCaller[T]) Callback(args []any) bool {
	obj := c.ref.value()
	if obj == nil {
		return true
	}
	c.set(obj, packValue(c.prune(args)))
	return false
}

func (c *SetitemCaller[T]) Call(args ...any) ([]any, error) {
	obj := c.ref.value()
	if obj == nil {
		return nil, fmt.Errorf("%w: item %v", ErrExpired, c.key)
	}
	c.set(obj, packValue(c.prune(args)))
	return nil, nil
}

// Slot returns a strong setter bound to the stored key.
func (c *SetitemCaller[T]) Slot() (any, error) {
	obj := c.ref.value()
	if obj == nil {
		return nil, fmt.Errorf("%w: item %v", ErrExpired, c.key)
	}
	return func(v any) { c.set(obj, v) }, nil
}

func (c *SetitemCaller[T]) IsAlive() bool {
	return c.ref.alive()
}

func (c *SetitemCaller[T]) Key() Key {
	return Key{Kind: KindSetitem, Ident: c.ident, Slot: c.key}
}

func (c *SetitemCaller[T]) Equal(other Callable) bool {
	return equalKeys(c, other)
}

// SetattrCaller writes values into a fixed exported field of a weakly held
// struct.
type SetattrCaller[T any] struct {
	base
	ref   ref[T]
	ident uintptr
	field string
	index []int
}

// Setattr returns a caller that assigns obj.field = value. T must be a struct
// type with an exported field of that name.
func Setattr[T any](obj *T, field string, opts ...Option) (*SetattrCaller[T], error) {
	if obj == nil {
		return nil, fmt.Errorf("%w: nil receiver", ErrUnsupported)
	}
	cfg := buildConfig(opts)
	t := reflect.TypeOf(obj).Elem()
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrUnsupported, t)
	}
	f, ok := t.FieldByName(field)
	if !ok || !f.IsExported() {
		return nil, fmt.Errorf("%w: %s has no settable field %q", ErrUnsupported, t, field)
	}
	return &SetattrCaller[T]{
		base:  base{maxArgs: cfg.maxArgs},
		ref:   newRef(obj, &cfg),
		ident: refIdent(obj),
		field: field,
		index: f.Index,
	}, nil
}

func (c *SetattrCaller[T]) set(obj *T, v any) {
	fv := reflect.ValueOf(obj).Elem().FieldByIndex(c.index)
	fv.Set(conformTo(fv.Type(), v))
}

// Callback writes the single value in args into the stored field, or reports
// true without writing when the struct has been reclaimed.
func (c *SetattrCaller[T]) Callback(args []any) bool {
	obj := c.ref.value()
	if obj == nil {
		return true
	}
	c.set(obj, packValue(c.prune(args)))
	return false
}

func (c *SetattrCaller[T]) Call(args ...any) ([]any, error) {
	obj := c.ref.value()
	if obj == nil {
		return nil, fmt.Errorf("%w: field %q", ErrExpired, c.field)
	}
	c.set(obj, packValue(c.prune(args)))
	return nil, nil
}

// Slot returns a strong setter bound to the stored field.
func (c *SetattrCaller[T]) Slot() (any, error) {
	obj := c.ref.value()
	if obj == nil {
		return nil, fmt.Errorf("%w: field %q", ErrExpired, c.field)
	}
	return func(v any) { c.set(obj, v) }, nil
}

func (c *SetattrCaller[T]) IsAlive() bool {
	return c.ref.alive()
}

func (c *SetattrCaller[T]) Key() Key {
	return Key{Kind: KindSetattr, Ident: c.ident, Slot: c.field}
}

func (c *SetattrCaller[T]) Equal(other Callable) bool {
	return equalKeys(c, other)
}
