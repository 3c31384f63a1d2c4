package weakcall

// Kind tags the variant a Callable was constructed as. Equality never crosses
// kinds: a Partial over a method is distinct from the method itself.
type Kind uint8

const (
	KindFunc Kind = iota + 1
	KindMethod
	KindPartial
	KindSetitem
	KindSetattr
)

func (k Kind) String() string {
	switch k {
	case KindFunc:
		return "func"
	case KindMethod:
		return "method"
	case KindPartial:
		return "partial"
	case KindSetitem:
		return "setitem"
	case KindSetattr:
		return "setattr"
	}
	return "unknown"
}

// Key identifies a Callable for registry deduplication. It is comparable and
// remains meaningful after the referent dies: Ident is the referent's address
// (or the func value's address) captured at construction, never a re-resolved
// pointer. Two Callables built independently from the same target produce the
// same Key, so inserting the "same" subscriber twice into a map keyed by Key
// is a no-op.
type Key struct {
	Kind  Kind
	Ident uintptr
	Slot  any
}

// Callable is a non-owning reference to a callable target. It unifies plain
// functions, bound methods, partial applications, and item/field write-sinks
// behind one contract: invoke, detect death, reconstruct, compare.
type Callable interface {
	// Callback invokes the target with args, truncated per WithMaxArgs. It
	// reports true iff the referent was found dead before the call was
	// attempted; the call is then skipped. The liveness check and the call
	// share a single resolution of the weak relation. Panics raised by the
	// target itself propagate unchanged.
	Callback(args []any) bool

	// Call invokes the reconstructed target and returns its results. It
	// fails with ErrExpired when the referent is dead; any other failure
	// comes from the target itself and propagates unchanged.
	Call(args ...any) ([]any, error)

	// Slot reconstructs and returns the original strong callable, for
	// callers that need to hand the target elsewhere rather than invoke it.
	// Fails with ErrExpired when the referent is dead.
	Slot() (any, error)

	// IsAlive reports whether the referent is still reachable. It resolves
	// the weak relation and discards the result without extending any
	// lifetime.
	IsAlive() bool

	// Key returns the identity key used for equality and registry dedup.
	Key() Key

	// Equal reports whether other references the same target: same variant,
	// same slot or key, and the same referent identity captured at
	// construction. Identity survives referent death.
	Equal(other Callable) bool
}

// New classifies fn structurally and returns the matching variant. An
// existing Callable passes through unchanged. Func values are accepted when
// they are declared functions; function literals and method values have no
// receiver this package can weakly capture and fail with ErrUnsupported
// unless WithPin requests an explicit strong hold. Bound methods and
// write-sinks have their own constructors (Method, Setitem, Setattr), since
// Go func values do not expose a receiver to classify.
func New(fn any, opts ...Option) (Callable, error) {
	if c, ok := fn.(Callable); ok {
		return c, nil
	}
	return Func(fn, opts...)
}

// base carries the argument cap shared by every variant.
type base struct {
	maxArgs int
}

func (b base) prune(args []any) []any {
	if b.maxArgs >= 0 && len(args) > b.maxArgs {
		return args[:b.maxArgs]
	}
	return args
}

func equalKeys(c, other Callable) bool {
	return other != nil && c.Key() == other.Key()
}
