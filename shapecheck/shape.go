// Package shapecheck validates the shapes of arrays and tensors against
// declarative patterns of exact sizes, wildcards and symbolic axis names.
//
// Symbolic names are bound to the first size they are matched against and
// must resolve to the same size wherever else they appear in the same
// validation scope:
//
//	x, err := shapecheck.Check(x, shapecheck.MustPattern("batch", 3, -1))
//
//	_, bindings, err := shapecheck.CheckAll(
//		[]shapecheck.Shape{q.Shape(), k.Shape()},
//		[]shapecheck.Pattern{
//			shapecheck.MustPattern("batch", "seq", "dim"),
//			shapecheck.MustPattern("batch", "seq", "dim"),
//		},
//		shapecheck.KeepBindings(),
//	)
package shapecheck

import (
	"strconv"
	"strings"
)

// Shape represents the size of every axis of an array, outermost axis first.
type Shape []int64

// HasShape is implemented by array-like values that can report their shape.
// The checker never reads or modifies anything but the shape.
type HasShape interface {
	Shape() Shape
}

// NewShape creates a new shape from the given dimensions.
func NewShape(dims ...int64) Shape {
	shape := make(Shape, len(dims))
	copy(shape, dims)
	return shape
}

// Shape returns s, so a bare Shape can be checked directly.
func (s Shape) Shape() Shape {
	return s
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// String renders the shape as a tuple, for example "(3, 4)" or "(3,)".
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, dim := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatInt(dim, 10))
	}
	if len(s) == 1 {
		b.WriteByte(',')
	}
	b.WriteByte(')')
	return b.String()
}

func cloneShape(shape Shape) Shape {
	if shape == nil {
		return nil
	}
	return NewShape(shape...)
}
