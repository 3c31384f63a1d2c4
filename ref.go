package weakcall

import (
	"runtime"
	"weak"

	logger "github.com/moontrade/log"
)

// ref is the non-owning handle to a referent: resolve-or-nil, plus an
// optional strong pin for shapes that cannot be weakly captured.
type ref[T any] struct {
	wp     weak.Pointer[T]
	pinned *T
}

func newRef[T any](p *T, cfg *config) ref[T] {
	if cfg.pin {
		return ref[T]{pinned: p}
	}
	if cfg.onExpire != nil {
		onExpire(p, cfg.onExpire)
	}
	return ref[T]{wp: weak.Make(p)}
}

func (r ref[T]) value() *T {
	if r.pinned != nil {
		return r.pinned
	}
	return r.wp.Value()
}

func (r ref[T]) alive() bool {
	return r.value() != nil
}

// onExpire schedules fn for when p is reclaimed. The hook runs on the
// runtime's cleanup goroutine, which is shared and must keep running, so a
// panicking hook is contained and logged rather than propagated.
func onExpire[T any](p *T, fn func()) {
	runtime.AddCleanup(p, func(fn func()) {
		defer func() {
			if e := recover(); e != nil {
				logger.Error(panicToError(e), "weakcall: expire hook panic")
			}
		}()
		fn()
	}, fn)
}
