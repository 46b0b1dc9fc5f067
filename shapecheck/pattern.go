package shapecheck

import (
	"reflect"
	"strings"
)

// Pattern is an ordered sequence of axis specifiers matched position by
// position against a Shape.
type Pattern []Axis

// NewPattern builds a pattern from integers, names and Axis values.
// An integer -1 is the wildcard; any other integer is an exact size and a
// string is a symbolic name.
func NewPattern(specs ...any) (Pattern, error) {
	pattern := make(Pattern, 0, len(specs))
	for i, spec := range specs {
		axis, err := toAxis(spec)
		if err != nil {
			e := errorf(ErrMalformedPattern, "axis %d: %s", i, err.msg)
			e.Axis = i
			return nil, e
		}
		pattern = append(pattern, axis)
	}
	if err := pattern.Validate(); err != nil {
		return nil, err
	}
	return pattern, nil
}

// MustPattern is like NewPattern but panics if the pattern is malformed.
func MustPattern(specs ...any) Pattern {
	pattern, err := NewPattern(specs...)
	if err != nil {
		panic(err)
	}
	return pattern
}

// Rank returns the number of axis specifiers.
func (p Pattern) Rank() int {
	return len(p)
}

// Names returns the symbolic names used by p in order of first appearance.
func (p Pattern) Names() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, axis := range p {
		if axis.kind != AxisNamed {
			continue
		}
		if _, ok := seen[axis.name]; ok {
			continue
		}
		seen[axis.name] = struct{}{}
		names = append(names, axis.name)
	}
	return names
}

// Validate reports the first malformed axis specifier in p.
func (p Pattern) Validate() error {
	for i, axis := range p {
		if err := axis.validate(); err != nil {
			malformed := errorf(ErrMalformedPattern, "pattern %s axis %d: %s", p, i, err.msg)
			malformed.Axis = i
			malformed.Pattern = p
			return malformed
		}
	}
	return nil
}

// String renders the pattern as a tuple, for example "(n, 3, -1)".
func (p Pattern) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, axis := range p {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(axis.String())
	}
	if len(p) == 1 {
		b.WriteByte(',')
	}
	b.WriteByte(')')
	return b.String()
}

// ToPattern converts a loosely typed pattern value into a Pattern.
//
// Accepted values are Pattern, []Axis, slices and arrays of integers,
// []string and []any holding integers, strings and Axis values. A bare
// string is rejected: it is a name, not a sequence of specifiers.
func ToPattern(v any) (Pattern, error) {
	switch p := v.(type) {
	case Pattern:
		return validated(p)
	case []Axis:
		return validated(Pattern(p))
	case []any:
		return NewPattern(p...)
	case string:
		return nil, errorf(ErrMalformedPattern, "pattern %q should be a sequence of axis specifiers, got string", p)
	case nil:
		return nil, errorf(ErrMalformedPattern, "pattern is nil")
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		specs := make([]any, rv.Len())
		for i := range specs {
			specs[i] = rv.Index(i).Interface()
		}
		return NewPattern(specs...)
	default:
		return nil, errorf(ErrMalformedPattern, "pattern %v of type %T cannot be converted to a sequence of axis specifiers", v, v)
	}
}

func validated(p Pattern) (Pattern, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func toAxis(spec any) (Axis, *Error) {
	switch s := spec.(type) {
	case Axis:
		return s, nil
	case string:
		return Named(s), nil
	case int:
		return Exact(int64(s)), nil
	case int8:
		return Exact(int64(s)), nil
	case int16:
		return Exact(int64(s)), nil
	case int32:
		return Exact(int64(s)), nil
	case int64:
		return Exact(s), nil
	case uint:
		return exactUnsigned(uint64(s))
	case uint8:
		return Exact(int64(s)), nil
	case uint16:
		return Exact(int64(s)), nil
	case uint32:
		return Exact(int64(s)), nil
	case uint64:
		return exactUnsigned(s)
	default:
		return Axis{}, errorf(ErrMalformedPattern, "specifier %v of type %T is neither an integer nor a name", spec, spec)
	}
}

func exactUnsigned(size uint64) (Axis, *Error) {
	if size > 1<<63-1 {
		return Axis{}, errorf(ErrMalformedPattern, "size %d overflows int64", size)
	}
	return Exact(int64(size)), nil
}
