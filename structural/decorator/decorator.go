// Package decorator demonstrates the Decorator pattern.
//
// RedShapeDecorator wraps any Shape, draws it and then adds its own border.
// Decorators are Shapes themselves, so they stack.
package decorator

import (
	"fmt"
	"io"
)

// Shape is the component interface.
type Shape interface {
	Draw() error
}

// Circle is a concrete component.
type Circle struct {
	Out io.Writer
}

func (c Circle) Draw() error {
	_, err := fmt.Fprintln(c.Out, "Drawing a circle")
	return err
}

// RedShapeDecorator adds a red border to the wrapped shape.
type RedShapeDecorator struct {
	shape Shape
	out   io.Writer
}

// NewRedShapeDecorator wraps shape.
func NewRedShapeDecorator(shape Shape, out io.Writer) *RedShapeDecorator {
	return &RedShapeDecorator{shape: shape, out: out}
}

func (d *RedShapeDecorator) Draw() error {
	if err := d.shape.Draw(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, "Adding red border")
	return err
}

// Decorator wraps a Shape into another Shape.
type Decorator func(Shape) Shape

// Decorate applies decorators in order; the last one is outermost.
func Decorate(s Shape, decorators ...Decorator) Shape {
	for _, d := range decorators {
		s = d(s)
	}
	return s
}

// Demo draws a circle wrapped in a red border.
func Demo(w io.Writer) error {
	var circle Shape = Circle{Out: w}
	redCircle := NewRedShapeDecorator(circle, w)
	return redCircle.Draw()
}
