package weakcall

// Option configures construction of a Callable.
type Option func(*config)

type config struct {
	maxArgs  int
	pin      bool
	onExpire func()
}

// WithMaxArgs caps how many positional arguments are forwarded on invocation,
// letting a variable-arity dispatcher feed a fixed-arity subscriber. Only the
// first n arguments are passed; the rest are dropped.
func WithMaxArgs(n int) Option { return func(c *config) { c.maxArgs = n } }

// WithPin holds a strong reference to callables whose receiver cannot be
// weakly captured (function literals and method values). A pinned Callable
// never expires; its target stays alive for as long as the Callable does.
func WithPin() Option { return func(c *config) { c.pin = true } }

// WithExpireFunc registers fn to run once the referent has been reclaimed,
// letting a registry prune eagerly instead of discovering death on the next
// Callback. fn runs on the runtime's cleanup goroutine; panics are recovered
// and logged. fn must not reference the referent, or it will never become
// unreachable. Pinned callables never expire, so the hook is not installed
// for them.
func WithExpireFunc(fn func()) Option { return func(c *config) { c.onExpire = fn } }

func buildConfig(opts []Option) config {
	cfg := config{maxArgs: -1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
