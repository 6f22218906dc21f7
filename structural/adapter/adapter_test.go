package adapter_test

import (
	"os"
	"testing"

	"github.com/sghaida/patterns/structural/adapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyOld records calls made to the legacy interface.
type spyOld struct{ calls int }

func (s *spyOld) Calculate(x, y int) int {
	s.calls++
	return x + y
}

func TestAdd_DelegatesToLegacy(t *testing.T) {
	t.Parallel()

	spy := &spyOld{}
	a := adapter.NewCalculatorAdapter(spy)

	assert.Equal(t, 5, a.Add(2, 3))
	assert.Equal(t, 1, spy.calls)
}

func TestArithmetic(t *testing.T) {
	t.Parallel()

	a := adapter.NewCalculatorAdapter(nil)
	assert.Equal(t, -1, a.Subtract(2, 3))
	assert.Equal(t, 6, a.Multiply(2, 3))

	q, err := a.Divide(7, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, q)

	q, err = a.Divide(-7, 2)
	require.NoError(t, err)
	assert.Equal(t, -3, q)
}

// TestDivide_ByZero verifies division by zero is reported instead of panicking.
func TestDivide_ByZero(t *testing.T) {
	t.Parallel()

	q, err := adapter.NewCalculatorAdapter(nil).Divide(1, 0)
	require.ErrorIs(t, err, adapter.ErrDivisionByZero)
	assert.Zero(t, q)
}

func ExampleDemo() {
	_ = adapter.Demo(os.Stdout)
	// Output:
	// 5
}
