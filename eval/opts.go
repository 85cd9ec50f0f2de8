package eval

// Option configures a Context.
type Option func(*Context)

// WithFunc registers fn under name, replacing any previous binding.
func WithFunc(name string, fn Func) Option {
	return func(c *Context) {
		c.funcs[name] = fn
	}
}

// WithEnv merges vars into the context environment.
func WithEnv(vars map[string]any) Option {
	return func(c *Context) {
		for k, v := range vars {
			c.env[k] = v
		}
	}
}

// WithMaxDepth caps call nesting when tokenizing in Eval.
func WithMaxDepth(n int) Option {
	return func(c *Context) {
		c.maxDepth = n
	}
}

// WithoutBuiltins removes the builtin functions from the registry.
func WithoutBuiltins() Option {
	return func(c *Context) {
		for name := range builtins() {
			delete(c.funcs, name)
		}
	}
}

// WithPassthrough re-emits calls to unregistered names verbatim instead
// of failing.
func WithPassthrough() Option {
	return func(c *Context) {
		c.passthrough = true
	}
}
