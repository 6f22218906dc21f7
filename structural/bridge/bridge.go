// Package bridge demonstrates the Bridge pattern.
//
// Shapes (the abstraction) and Renderers (the implementation) vary
// independently: any shape can be drawn by any renderer.
package bridge

import (
	"fmt"
	"io"
	"strconv"
)

// Renderer is the implementation side.
type Renderer interface {
	RenderCircle(radius float32) error
	RenderSquare(side float32) error
}

// Shape is the abstraction side.
type Shape interface {
	Draw() error
}

type namedRenderer struct {
	name string
	out  io.Writer
}

func (r namedRenderer) render(kind string, size float32) error {
	_, err := fmt.Fprintf(r.out, "%s %s: %s\n", r.name, kind, strconv.FormatFloat(float64(size), 'f', -1, 32))
	return err
}

func (r namedRenderer) RenderCircle(radius float32) error { return r.render("Circle", radius) }

func (r namedRenderer) RenderSquare(side float32) error { return r.render("Square", side) }

// NewRasterRenderer returns a renderer drawing with pixels.
func NewRasterRenderer(out io.Writer) Renderer {
	return namedRenderer{name: "Raster", out: out}
}

// NewVectorRenderer returns a renderer drawing with paths.
func NewVectorRenderer(out io.Writer) Renderer {
	return namedRenderer{name: "Vector", out: out}
}

// Circle is a shape with a radius.
type Circle struct {
	Radius   float32
	Renderer Renderer
}

// Draw implements Shape.
func (c Circle) Draw() error { return c.Renderer.RenderCircle(c.Radius) }

// Square is a shape with a side length.
type Square struct {
	Side     float32
	Renderer Renderer
}

// Draw implements Shape.
func (s Square) Draw() error { return s.Renderer.RenderSquare(s.Side) }

// Demo draws a raster circle and a vector square.
func Demo(w io.Writer) error {
	shapes := []Shape{
		Circle{Radius: 10, Renderer: NewRasterRenderer(w)},
		Square{Side: 20, Renderer: NewVectorRenderer(w)},
	}
	for _, s := range shapes {
		if err := s.Draw(); err != nil {
			return err
		}
	}
	return nil
}
