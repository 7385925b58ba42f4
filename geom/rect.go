// Package geom provides simple geometric value objects.
package geom

import "fmt"

// Scalar is the set of number types a Rect may be measured in.
type Scalar interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Rect is a width × height extent. It is a plain value object: copy it
// freely, there are no setters and no hidden state. Values are taken
// as-is, without validation.
type Rect[T Scalar] struct {
	Width  T `json:"width"`
	Height T `json:"height"`
}

// NewRect creates a Rect from width and height.
func NewRect[T Scalar](width, height T) Rect[T] {
	return Rect[T]{Width: width, Height: height}
}

// Area computes width × height on demand.
func (r Rect[T]) Area() T {
	return r.Width * r.Height
}

// Exemplar is a prototype for reconstructing a Rect from positional
// constructor arguments, as extracted from a JSON object in field order
// (see package codec). The argument order is width, height — matching the
// JSON field order of Rect. That coupling is inherent to positional
// reconstruction and deliberately kept.
type Exemplar[T Scalar] struct{}

// Construct builds a Rect from exactly two numeric arguments.
func (Exemplar[T]) Construct(args []any) (Rect[T], error) {
	if len(args) != 2 {
		return Rect[T]{}, fmt.Errorf("rect wants 2 constructor arguments, got %d", len(args))
	}
	w, ok := args[0].(float64)
	if !ok {
		return Rect[T]{}, fmt.Errorf("rect width is not a number: %v", args[0])
	}
	h, ok := args[1].(float64)
	if !ok {
		return Rect[T]{}, fmt.Errorf("rect height is not a number: %v", args[1])
	}
	return NewRect(T(w), T(h)), nil
}
