package weakcall

import (
	"reflect"
	"runtime"
	"strings"
	"unsafe"
)

type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// funcIdent returns the address of the funcval backing fn. Every reference to
// the same declared function shares one static funcval, so two independent
// wraps of it compare equal; distinct closure instances do not.
func funcIdent(fn any) uintptr {
	return uintptr((*iface)(unsafe.Pointer(&fn)).data)
}

// refIdent captures the referent's address as an identity token. The token is
// compared, never dereferenced, so it stays valid after the referent dies.
func refIdent[T any](p *T) uintptr {
	return uintptr(unsafe.Pointer(p))
}

func funcName(fn reflect.Value) string {
	f := runtime.FuncForPC(fn.Pointer())
	if f == nil {
		return ""
	}
	return f.Name()
}

// isMethodValue reports whether name is a method-value wrapper ("pkg.T.M-fm").
// The wrapper closes over its receiver, which a func value does not expose.
func isMethodValue(name string) bool {
	return strings.HasSuffix(name, "-fm")
}

// isClosure reports whether name belongs to a function literal: the compiler
// names those with ".func" followed by a digit ("pkg.F.func1", nested
// "pkg.F.func1.2").
func isClosure(name string) bool {
	for {
		i := strings.Index(name, ".func")
		if i < 0 {
			return false
		}
		rest := name[i+len(".func"):]
		if len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9' {
			return true
		}
		name = rest
	}
}
