package pack

// Options control encoding. Decoding takes none.
type Options struct {
	// WithDefaults emits fields and containers that hold their default.
	WithDefaults bool
	// ValueAsString renders numeric leaves in their text form. Booleans
	// and strings keep their shape.
	ValueAsString bool
	// PrettyPrint asks text backends for indented output.
	PrettyPrint bool
}

type Option func(*Options)

func WithDefaults() Option {
	return func(o *Options) { o.WithDefaults = true }
}

func ValueAsString() Option {
	return func(o *Options) { o.ValueAsString = true }
}

func PrettyPrint() Option {
	return func(o *Options) { o.PrettyPrint = true }
}

// NewOptions applies opts to the zero Options.
func NewOptions(opts ...Option) Options {
	var res Options
	for _, opt := range opts {
		opt(&res)
	}
	return res
}
