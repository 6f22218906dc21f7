// Package adapter demonstrates the Adapter pattern.
//
// CalculatorAdapter exposes the NewCalculator interface and routes addition
// through a legacy OldCalculator.
package adapter

import (
	"errors"
	"fmt"
	"io"
)

// ErrDivisionByZero is returned by Divide when y is zero.
var ErrDivisionByZero = errors.New("adapter: division by zero")

// OldCalculator is the legacy interface. Calculate adds its operands.
type OldCalculator interface {
	Calculate(x, y int) int
}

// NewCalculator is the interface clients expect.
type NewCalculator interface {
	Add(x, y int) int
	Subtract(x, y int) int
	Multiply(x, y int) int
	Divide(x, y int) (int, error)
}

// LegacyCalculator implements OldCalculator.
type LegacyCalculator struct{}

// Calculate implements OldCalculator.
func (LegacyCalculator) Calculate(x, y int) int { return x + y }

// CalculatorAdapter adapts an OldCalculator to NewCalculator.
type CalculatorAdapter struct {
	old OldCalculator
}

var _ NewCalculator = (*CalculatorAdapter)(nil)

// NewCalculatorAdapter wraps old; a nil old uses LegacyCalculator.
func NewCalculatorAdapter(old OldCalculator) *CalculatorAdapter {
	if old == nil {
		old = LegacyCalculator{}
	}
	return &CalculatorAdapter{old: old}
}

func (a *CalculatorAdapter) Add(x, y int) int { return a.old.Calculate(x, y) }

func (a *CalculatorAdapter) Subtract(x, y int) int { return x - y }

func (a *CalculatorAdapter) Multiply(x, y int) int { return x * y }

// Divide returns the truncated quotient.
func (a *CalculatorAdapter) Divide(x, y int) (int, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return x / y, nil
}

// Demo adds 2 and 3 through the adapter.
func Demo(w io.Writer) error {
	var calc NewCalculator = NewCalculatorAdapter(nil)
	_, err := fmt.Fprintln(w, calc.Add(2, 3))
	return err
}
