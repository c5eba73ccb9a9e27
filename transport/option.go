package transport

// Option configures a transport.
type Option func(config) config

type config struct {
	onError func(error)
}

func makeConfig(opts ...Option) config {
	cfg := config{onError: func(error) {}}

	for _, opt := range opts {
		if opt != nil {
			cfg = opt(cfg)
		}
	}

	return cfg
}

// OnError returns an option that installs fn as the handler for encoding,
// write, and evaluation errors. A nil fn discards errors.
func OnError(fn func(error)) Option {
	return func(c config) config {
		if fn == nil {
			fn = func(error) {}
		}

		c.onError = fn

		return c
	}
}
