package shapecheck

import (
	"strconv"
)

// WildcardSize is the exact-size spelling of a wildcard axis.
const WildcardSize = int64(-1)

// AxisKind identifies which variant an Axis holds.
type AxisKind uint8

const (
	axisInvalid AxisKind = iota
	// AxisExact matches exactly one size.
	AxisExact
	// AxisWildcard matches any size and binds nothing.
	AxisWildcard
	// AxisNamed binds a symbolic name to the size it is first matched against.
	AxisNamed
)

func (k AxisKind) String() string {
	switch k {
	case AxisExact:
		return "exact"
	case AxisWildcard:
		return "wildcard"
	case AxisNamed:
		return "named"
	default:
		return "invalid"
	}
}

// Axis is a single axis specifier of a Pattern.
// The zero Axis is invalid; build one with Exact, Any or Named.
type Axis struct {
	kind AxisKind
	size int64
	name string
}

// Exact returns a specifier matching exactly size. Exact(-1) is the wildcard.
func Exact(size int64) Axis {
	if size == WildcardSize {
		return Any()
	}
	return Axis{kind: AxisExact, size: size}
}

// Any returns the wildcard specifier.
func Any() Axis {
	return Axis{kind: AxisWildcard, size: WildcardSize}
}

// Named returns a symbolic specifier. Names must be non-empty and must not
// parse as integers; Pattern.Validate reports violations.
func Named(name string) Axis {
	return Axis{kind: AxisNamed, name: name}
}

// Kind returns the variant held by a.
func (a Axis) Kind() AxisKind {
	return a.kind
}

// Size returns the expected size of an exact axis and -1 for a wildcard.
func (a Axis) Size() int64 {
	return a.size
}

// Name returns the symbolic name of a named axis.
func (a Axis) Name() string {
	return a.name
}

func (a Axis) String() string {
	switch a.kind {
	case AxisExact, AxisWildcard:
		return strconv.FormatInt(a.size, 10)
	case AxisNamed:
		return a.name
	default:
		return "<invalid>"
	}
}

func (a Axis) validate() *Error {
	switch a.kind {
	case AxisExact:
		if a.size < 0 {
			return errorf(ErrMalformedPattern, "exact axis size must be >= 0 or -1, got %d", a.size)
		}
	case AxisWildcard:
	case AxisNamed:
		if a.name == "" {
			return errorf(ErrMalformedPattern, "axis name cannot be empty")
		}
		if isNumeral(a.name) {
			return errorf(ErrMalformedPattern, "axis name %q is numeric; use Exact for sizes", a.name)
		}
	default:
		return errorf(ErrMalformedPattern, "uninitialized axis specifier")
	}
	return nil
}

func isNumeral(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}
