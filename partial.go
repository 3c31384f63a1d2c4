package weakcall

// Partial composes a Callable target with bound arguments applied ahead of
// call-time arguments. The bound arguments are owned strong values; only the
// target's receiver is weak, so the partial is alive iff its target is.
type Partial struct {
	base
	target Callable
	args   []any
}

// NewPartial wraps target (an existing Callable, or any value New accepts)
// together with bound arguments. Wrapping another Partial stacks: the outer
// bound arguments are applied after the inner ones.
func NewPartial(target any, args ...any) (*Partial, error) {
	c, err := New(target)
	if err != nil {
		return nil, err
	}
	return &Partial{base: base{maxArgs: -1}, target: c, args: args}, nil
}

// MaxArgs returns a copy limited to forwarding n call-time arguments. Bound
// arguments always pass; only the call-time tail is truncated.
func (p *Partial) MaxArgs(n int) *Partial {
	q := *p
	q.maxArgs = n
	return &q
}

func (p *Partial) merged(args []any) []any {
	args = p.prune(args)
	out := make([]any, 0, len(p.args)+len(args))
	out = append(out, p.args...)
	return append(out, args...)
}

func (p *Partial) Callback(args []any) bool {
	return p.target.Callback(p.merged(args))
}

func (p *Partial) Call(args ...any) ([]any, error) {
	return p.target.Call(p.merged(args)...)
}

// Slot reconstructs a strong callable that applies the bound arguments ahead
// of its own. The returned func holds the resolved target strongly through
// the wrapped Callable's own Slot semantics at call time.
func (p *Partial) Slot() (any, error) {
	if !p.target.IsAlive() {
		return nil, ErrExpired
	}
	target, bound := p.target, p.args
	return func(args ...any) ([]any, error) {
		all := make([]any, 0, len(bound)+len(args))
		all = append(all, bound...)
		return target.Call(append(all, args...)...)
	}, nil
}

func (p *Partial) IsAlive() bool {
	return p.target.IsAlive()
}

// Key mirrors the target's identity under the Partial kind. Bound arguments
// do not participate: two partials over the same target compare equal even
// when their captured arguments differ.
func (p *Partial) Key() Key {
	k := p.target.Key()
	k.Kind = KindPartial
	return k
}

func (p *Partial) Equal(other Callable) bool {
	return equalKeys(p, other)
}
