// Package builder demonstrates the Builder pattern.
//
// CarBuilder assembles a Car step by step through a fluent API. Create starts a
// new car with a fresh identifier; setters fill in the optional parts; Build
// validates the result and hands out a copy.
//
//	b := builder.NewCarBuilder()
//	b.Create()
//	car, err := b.SetBrand("Ford").SetModel("Mustang").SetMaxSpeed(320).SetColor(builder.White).Build()
package builder

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Color is the paint of a car.
type Color int

const (
	Black Color = iota
	White
	Gray
	Blue
	Red
	Green
)

var colorNames = [...]string{"Black", "White", "Gray", "Blue", "Red", "Green"}

// String returns the color name.
func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Car is the product.
type Car struct {
	ID       string `validate:"required"`
	Brand    string `validate:"required"`
	Model    string
	Color    string
	MaxSpeed int `validate:"gte=0,lte=500"`
}

// String renders the car one field per line. ID is always present; the other
// fields are only listed when set.
func (c *Car) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ID: %s\n", c.ID)
	if c.Brand != "" {
		fmt.Fprintf(&sb, "Brand: %s\n", c.Brand)
	}
	if c.Model != "" {
		fmt.Fprintf(&sb, "Model: %s\n", c.Model)
	}
	if c.Color != "" {
		fmt.Fprintf(&sb, "Color: %s\n", c.Color)
	}
	if c.MaxSpeed > 0 {
		fmt.Fprintf(&sb, "Speed: %d\n", c.MaxSpeed)
	}
	return sb.String()
}

var validate = validator.New()

// Option configures a CarBuilder.
type Option func(*CarBuilder)

// WithIDGenerator replaces the UUID generator, mostly for deterministic output.
func WithIDGenerator(fn func() string) Option {
	return func(b *CarBuilder) {
		if fn != nil {
			b.newID = fn
		}
	}
}

// CarBuilder builds cars.
type CarBuilder struct {
	car   *Car
	newID func() string
}

// NewCarBuilder returns a builder with no car in progress.
func NewCarBuilder(opts ...Option) *CarBuilder {
	b := &CarBuilder{newID: uuid.NewString}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Create starts a new car with a fresh ID and makes it the builder's target.
func (b *CarBuilder) Create() *Car {
	b.car = &Car{ID: b.newID()}
	return b.car
}

// Car returns the car in progress, starting one if needed.
func (b *CarBuilder) Car() *Car {
	if b.car == nil {
		b.Create()
	}
	return b.car
}

// SetBrand sets the brand of the car in progress.
func (b *CarBuilder) SetBrand(brand string) *CarBuilder {
	b.Car().Brand = brand
	return b
}

// SetModel sets the model of the car in progress.
func (b *CarBuilder) SetModel(model string) *CarBuilder {
	b.Car().Model = model
	return b
}

// SetMaxSpeed sets the top speed in km/h; Build rejects values outside 0..500.
func (b *CarBuilder) SetMaxSpeed(speed int) *CarBuilder {
	b.Car().MaxSpeed = speed
	return b
}

// SetColor sets the color of the car in progress.
func (b *CarBuilder) SetColor(c Color) *CarBuilder {
	b.Car().Color = c.String()
	return b
}

// WriteTo writes the car in progress to w. It implements io.WriterTo.
func (b *CarBuilder) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.Car().String())
	return int64(n), err
}

// Build validates the car in progress and returns a copy of it.
func (b *CarBuilder) Build() (*Car, error) {
	car := *b.Car()
	if err := validate.Struct(&car); err != nil {
		return nil, fmt.Errorf("builder: invalid car: %w", err)
	}
	return &car, nil
}

// Demo builds and prints a Mustang and a Focus with the same builder.
func Demo(w io.Writer, opts ...Option) error {
	b := NewCarBuilder(opts...)

	b.Create()
	if _, err := b.SetBrand("Ford").
		SetModel("Mustang").
		SetMaxSpeed(320).
		SetColor(White).
		WriteTo(w); err != nil {
		return err
	}

	b.Create()
	_, err := b.SetBrand("Ford").
		SetModel("Focus").
		SetMaxSpeed(230).
		SetColor(Gray).
		WriteTo(w)
	return err
}
