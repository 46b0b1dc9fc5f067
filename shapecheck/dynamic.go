package shapecheck

import (
	"reflect"
)

// CheckAny validates loosely typed arguments, selecting the calling
// convention from their structure:
//
//   - arrays implements HasShape and shapes is one pattern value (anything
//     ToPattern accepts): arrays is checked against that pattern.
//   - arrays is a slice of HasShape values and shapes is a slice of pattern
//     values of the same length: the batch is checked as by CheckAll.
//
// Every other combination fails with ErrInvalidArguments. On success the
// arrays argument is returned unchanged. The binding table is returned if
// KeepBindings is given or, in single mode, if a table was supplied with
// WithBindings.
func CheckAny(arrays any, shapes any, opts ...Option) (any, Bindings, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, nil, err
	}

	if array, ok := arrays.(HasShape); ok {
		if isPatternList(shapes) {
			return nil, nil, invalidArguments(arrays, shapes)
		}
		pattern, err := ToPattern(shapes)
		if err != nil {
			return nil, nil, err
		}
		if err := checkShape(array.Shape(), pattern, cfg.bindings, -1); err != nil {
			return nil, nil, err
		}
		if cfg.keepBindings || cfg.external {
			return arrays, cfg.bindings, nil
		}
		return arrays, nil, nil
	}

	list, ok := shapedList(arrays)
	if !ok || !isSequenceOfPatterns(shapes) {
		return nil, nil, invalidArguments(arrays, shapes)
	}

	patterns := reflect.ValueOf(shapes)
	if patterns.Len() != len(list) {
		return nil, nil, countMismatch(len(list), patterns.Len())
	}

	for i, array := range list {
		pattern, err := ToPattern(patterns.Index(i).Interface())
		if err != nil {
			return nil, nil, withArg(err, i)
		}
		if err := checkShape(array.Shape(), pattern, cfg.bindings, i); err != nil {
			return nil, nil, err
		}
	}

	if cfg.keepBindings {
		return arrays, cfg.bindings, nil
	}
	return arrays, nil, nil
}

func invalidArguments(arrays, shapes any) *Error {
	return errorf(ErrInvalidArguments, "invalid combination of arrays (%T) and patterns (%T)", arrays, shapes)
}

// shapedList returns the elements of a slice or array whose elements all
// implement HasShape.
func shapedList(v any) ([]HasShape, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	list := make([]HasShape, rv.Len())
	for i := range list {
		elem := rv.Index(i)
		if elem.Kind() == reflect.Interface && elem.IsNil() {
			return nil, false
		}
		shaped, ok := elem.Interface().(HasShape)
		if !ok {
			return nil, false
		}
		list[i] = shaped
	}
	return list, true
}

// isPatternList reports whether v is a sequence of patterns rather than a
// single pattern. Elements need not be valid patterns; ToPattern reports
// those per argument.
func isPatternList(v any) bool {
	switch v.(type) {
	case nil, string, Pattern, []Axis:
		return false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return false
	}

	switch rv.Type().Elem().Kind() {
	case reflect.Slice, reflect.Array:
		return true
	case reflect.Interface:
		for i := 0; i < rv.Len(); i++ {
			if isSequence(rv.Index(i)) {
				return true
			}
		}
	}
	return false
}

// isSequenceOfPatterns reports whether v can hold one pattern per array of
// a batch. A Pattern is a single pattern even though it is a slice.
func isSequenceOfPatterns(v any) bool {
	switch v.(type) {
	case nil, string, Pattern, []Axis:
		return false
	}
	return isSequence(reflect.ValueOf(v))
}

func isSequence(v reflect.Value) bool {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}
	return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
}
