package weakcall

import "reflect"

// invoker performs []any-shaped calls against a reflected function. The
// receiver, when there is one, is supplied per call so the bound method never
// has to be kept alive between calls. Input types are captured once at
// construction; the per-call work is conversion plus reflect.Call.
type invoker struct {
	fn       reflect.Value
	in       []reflect.Type
	variadic bool
	hasRecv  bool
}

func newInvoker(fn reflect.Value, hasRecv bool) invoker {
	t := fn.Type()
	in := make([]reflect.Type, t.NumIn())
	for i := range in {
		in[i] = t.In(i)
	}
	return invoker{fn: fn, in: in, variadic: t.IsVariadic(), hasRecv: hasRecv}
}

// call invokes with recv (ignored unless hasRecv) followed by args.
// Argument-count and type mismatches panic exactly as reflect.Call does:
// errors raised by the call itself are never wrapped at this layer.
func (iv *invoker) call(recv reflect.Value, args []any) []any {
	in := make([]reflect.Value, 0, len(args)+1)
	if iv.hasRecv {
		in = append(in, recv)
	}
	for _, arg := range args {
		in = append(in, conformTo(iv.paramType(len(in)), arg))
	}
	out := iv.fn.Call(in)
	if len(out) == 0 {
		return nil
	}
	results := make([]any, len(out))
	for i, v := range out {
		results[i] = v.Interface()
	}
	return results
}

func (iv *invoker) paramType(pos int) reflect.Type {
	if iv.variadic && pos >= len(iv.in)-1 {
		return iv.in[len(iv.in)-1].Elem()
	}
	if pos < len(iv.in) {
		return iv.in[pos]
	}
	return nil
}

// conformTo shapes arg for a parameter of type t: nil becomes t's zero value,
// convertible values are converted, everything else is passed through for
// reflect to accept or reject. Integer-to-string conversion is excluded: a
// mis-typed argument should fail the call, not become a one-rune string.
func conformTo(t reflect.Type, arg any) reflect.Value {
	if arg == nil {
		if t == nil {
			return reflect.Value{}
		}
		return reflect.Zero(t)
	}
	v := reflect.ValueOf(arg)
	if t != nil && v.Type() != t && !v.Type().AssignableTo(t) &&
		v.Type().ConvertibleTo(t) && !runeConversion(v.Type(), t) {
		v = v.Convert(t)
	}
	return v
}

func runeConversion(from, to reflect.Type) bool {
	if to.Kind() != reflect.String {
		return false
	}
	switch from.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}
