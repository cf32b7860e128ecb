package connector

// Option provides a way to set functional parameters to connectors.
type Option func(*options)

type options struct {
	cfg       Config
	observers []*Output
	dataType  *DataType
	caching   *bool
	replace   interface{}
	name      string
}

func newOptions(opts []Option) options {
	o := options{cfg: DefaultConfig()}
	for _, option := range opts {
		option(&o)
	}
	if o.cfg.Logger == nil {
		o.cfg.Logger = defaultLogger
	}
	return o
}

// WithConfig sets config to connector. If this option is not provided,
// DefaultConfig is used.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithObservers sets outputs of the same owner which are affected when the
// input is called. Applies to inputs.
func WithObservers(outputs ...*Output) Option {
	return func(o *options) {
		o.observers = append(o.observers, outputs...)
	}
}

// WithType overrides the data type derived from the method signature.
// Applies to outputs, inputs and multi-inputs.
func WithType(d DataType) Option {
	return func(o *options) {
		o.dataType = &d
	}
}

// WithCaching enables or disables caching of output value. If this option
// is not provided, Config.Caching is used.
func WithCaching(caching bool) Option {
	return func(o *options) {
		o.caching = &caching
	}
}

// WithReplace sets replace method to multi-input. The method must have
// func(ID, T) or func(ID, T) error signature. Multi-input with replace
// method keeps the id of connection when upstream value changes.
func WithReplace(method interface{}) Option {
	return func(o *options) {
		o.replace = method
	}
}

// WithName overrides the method part of connector name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}
