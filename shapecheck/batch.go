package shapecheck

// Option customizes a batch check.
type Option func(*config) error

type config struct {
	bindings     Bindings
	external     bool
	keepBindings bool
}

func newConfig(opts []Option) (config, error) {
	var cfg config
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}
	if cfg.bindings == nil {
		cfg.bindings = make(Bindings)
	}
	return cfg, nil
}

// WithBindings resolves symbolic names through an existing table, typically
// one returned by an earlier call with KeepBindings. The table is extended
// in place. A nil table is the same as omitting the option.
func WithBindings(bindings Bindings) Option {
	return func(cfg *config) error {
		cfg.bindings = bindings
		cfg.external = bindings != nil
		return nil
	}
}

// KeepBindings makes the check return its final binding table.
func KeepBindings() Option {
	return func(cfg *config) error {
		cfg.keepBindings = true
		return nil
	}
}

// CheckAll validates arrays[i] against patterns[i] for every i with one
// binding table shared by all arguments, so a symbolic name must resolve to
// the same size across the whole batch. It returns arrays unchanged, and the
// binding table if KeepBindings is given.
//
// The counts of arrays and patterns must match; this is checked before any
// array. On failure no arrays are returned and a table supplied with
// WithBindings may hold names bound by arguments validated before the
// failing one.
func CheckAll[T HasShape](arrays []T, patterns []Pattern, opts ...Option) ([]T, Bindings, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, nil, err
	}

	if len(arrays) != len(patterns) {
		return nil, nil, countMismatch(len(arrays), len(patterns))
	}

	for i := range arrays {
		if err := checkShape(arrays[i].Shape(), patterns[i], cfg.bindings, i); err != nil {
			return nil, nil, err
		}
	}

	if !cfg.keepBindings {
		return arrays, nil, nil
	}
	return arrays, cfg.bindings, nil
}
