package shapecheck

// Check validates the shape of array against pattern and returns array
// unchanged. A symbolic name repeated within pattern must match the same
// size at every position.
func Check[T HasShape](array T, pattern Pattern) (T, error) {
	if err := checkShape(array.Shape(), pattern, make(Bindings), -1); err != nil {
		var zero T
		return zero, err
	}
	return array, nil
}

// CheckWith is like Check but resolves symbolic names through bindings,
// which is extended in place with every newly bound name and returned.
// A nil bindings starts a new table.
//
// On failure bindings may hold names bound before the failing axis.
func CheckWith[T HasShape](array T, pattern Pattern, bindings Bindings) (T, Bindings, error) {
	if bindings == nil {
		bindings = make(Bindings)
	}
	if err := checkShape(array.Shape(), pattern, bindings, -1); err != nil {
		var zero T
		return zero, bindings, err
	}
	return array, bindings, nil
}

// Assert is like Check but panics with the *Error on mismatch.
func Assert[T HasShape](array T, pattern Pattern) T {
	array, err := Check(array, pattern)
	if err != nil {
		panic(err)
	}
	return array
}

// checkShape matches shape against pattern axis by axis. arg is the
// argument position reported in errors, or -1 in single mode.
func checkShape(shape Shape, pattern Pattern, bindings Bindings, arg int) error {
	if err := pattern.Validate(); err != nil {
		return withArg(err, arg)
	}

	if len(shape) != len(pattern) {
		return withArg(rankMismatch(shape, pattern), arg)
	}

	for i, axis := range pattern {
		switch axis.kind {
		case AxisWildcard:
			continue
		case AxisExact:
			if shape[i] != axis.size {
				return withArg(sizeMismatch(shape, pattern, i), arg)
			}
		case AxisNamed:
			if bound, ok := bindings.bind(axis.name, shape[i]); !ok {
				return bindingConflict(shape, pattern, i, arg, bound)
			}
		}
	}

	return nil
}

func withArg(err error, arg int) error {
	if e, ok := err.(*Error); ok {
		e.Arg = arg
	}
	return err
}
