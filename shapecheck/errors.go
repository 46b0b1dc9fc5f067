package shapecheck

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinels identifying the kind of an *Error. Match them with errors.Is.
var (
	ErrRankMismatch     = errors.New("rank mismatch")
	ErrSizeMismatch     = errors.New("axis size mismatch")
	ErrBindingConflict  = errors.New("axis binding conflict")
	ErrCountMismatch    = errors.New("array and pattern count mismatch")
	ErrMalformedPattern = errors.New("malformed pattern")
	ErrInvalidArguments = errors.New("invalid combination of arrays and patterns")
)

// Error is returned for every failed validation.
//
// Fields that do not apply to Kind are left at their zero value, except Arg
// and Axis which are -1 when unknown.
type Error struct {
	// Kind is one of the Err* sentinels.
	Kind error
	// Arg is the argument position in a batch call, -1 in single mode.
	Arg int
	// Axis is the offending axis index.
	Axis int
	// Name is the symbolic axis name of a binding conflict.
	Name string
	// Got and Want are the observed and expected sizes (or ranks, or counts).
	Got  int64
	Want int64

	Shape   Shape
	Pattern Pattern

	msg string
}

func (e *Error) Error() string {
	if e.msg == "" {
		if e.Kind == nil {
			return "shape error"
		}
		return e.Kind.Error()
	}
	if e.Arg >= 0 && e.Kind != ErrBindingConflict && e.Kind != ErrCountMismatch {
		return fmt.Sprintf("argument %d: %s", e.Arg, e.msg)
	}
	return e.msg
}

// Unwrap returns Kind so that errors.Is matches the sentinels.
func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error) *Error {
	return &Error{Kind: kind, Arg: -1, Axis: -1}
}

func errorf(kind error, format string, args ...any) *Error {
	e := newError(kind)
	e.msg = fmt.Sprintf(format, args...)
	return e
}

func rankMismatch(shape Shape, pattern Pattern) *Error {
	e := errorf(ErrRankMismatch, "array shape %s does not match pattern %s: rank %d, want %d",
		shape, pattern, len(shape), len(pattern))
	e.Got, e.Want = int64(len(shape)), int64(len(pattern))
	e.Shape, e.Pattern = cloneShape(shape), pattern
	return e
}

func sizeMismatch(shape Shape, pattern Pattern, axis int) *Error {
	e := errorf(ErrSizeMismatch, "array shape %s does not match pattern %s: axis %d has size %d, want %d",
		shape, pattern, axis, shape[axis], pattern[axis].size)
	e.Axis = axis
	e.Got, e.Want = shape[axis], pattern[axis].size
	e.Shape, e.Pattern = cloneShape(shape), pattern
	return e
}

func bindingConflict(shape Shape, pattern Pattern, axis int, arg int, bound int64) *Error {
	name := pattern[axis].name
	var e *Error
	if arg >= 0 {
		e = errorf(ErrBindingConflict, "array at argument position %d had shape %s with %s of size %d, expected axis size %d",
			arg, shape, name, shape[axis], bound)
	} else {
		e = errorf(ErrBindingConflict, "array had shape %s with %s of size %d, expected axis size %d",
			shape, name, shape[axis], bound)
	}
	e.Arg, e.Axis, e.Name = arg, axis, name
	e.Got, e.Want = shape[axis], bound
	e.Shape, e.Pattern = cloneShape(shape), pattern
	return e
}

func countMismatch(arrays, patterns int) *Error {
	e := errorf(ErrCountMismatch, "got %d arrays and %d patterns", arrays, patterns)
	e.Got, e.Want = int64(arrays), int64(patterns)
	return e
}
