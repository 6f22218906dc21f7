package chain_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/sghaida/patterns/behavioral/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTypeHandler_Routing verifies requests are handled by the first matching link
// and dropped when nothing matches.
func TestTypeHandler_Routing(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		reqType string
		handled bool
		output  string
	}{
		{name: "first link", reqType: "Type1", handled: true, output: "Request handle\n"},
		{name: "second link", reqType: "Type2", handled: true, output: "Request handle\n"},
		{name: "no match", reqType: "Type3", handled: false, output: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			head := chain.Build(
				chain.NewTypeHandler("Type1", &buf),
				chain.NewTypeHandler("Type2", &buf),
			)

			got, err := head.Handle(chain.Request{Type: tc.reqType})
			require.NoError(t, err)
			assert.Equal(t, tc.handled, got)
			assert.Equal(t, tc.output, buf.String())
		})
	}
}

// TestSetNext_ReturnsSuccessor verifies SetNext returns its argument for fluent chains.
func TestSetNext_ReturnsSuccessor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h1 := chain.NewTypeHandler("a", &buf)
	h2 := chain.NewTypeHandler("b", &buf)
	h3 := chain.NewTypeHandler("c", &buf)

	got := h1.SetNext(h2).SetNext(h3)
	require.Same(t, h3, got)

	handled, err := h1.Handle(chain.Request{Type: "c"})
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, "c", h3.Accepts())
}

// TestFunc_ForwardsWhenNotHandled verifies the function adapter falls through to its successor.
func TestFunc_ForwardsWhenNotHandled(t *testing.T) {
	t.Parallel()

	var seen []string
	var buf bytes.Buffer

	audit := chain.Func(func(r chain.Request) (bool, error) {
		seen = append(seen, r.Type)
		return false, nil
	})
	head := chain.Build(audit, chain.NewTypeHandler("Type2", &buf))

	handled, err := head.Handle(chain.Request{Type: "Type2"})
	require.NoError(t, err)
	require.True(t, handled)
	assert.Equal(t, []string{"Type2"}, seen)
	assert.Equal(t, "Request handle\n", buf.String())

	var nilFn chain.HandlerFunc
	handled, err = nilFn.Handle(chain.Request{Type: "x"})
	require.NoError(t, err)
	assert.False(t, handled)
}

// TestFunc_ErrorStopsChain verifies a failing function does not forward the request.
func TestFunc_ErrorStopsChain(t *testing.T) {
	t.Parallel()

	denied := errors.New("denied")
	var buf bytes.Buffer
	head := chain.Build(
		chain.Func(func(chain.Request) (bool, error) { return false, denied }),
		chain.NewTypeHandler("Type2", &buf),
	)

	_, err := head.Handle(chain.Request{Type: "Type2"})
	require.ErrorIs(t, err, denied)
	assert.Empty(t, buf.String())
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errClosed }

var errClosed = errors.New("closed")

// TestDemo_WriteError verifies output failures surface from Handle and Demo.
func TestDemo_WriteError(t *testing.T) {
	t.Parallel()

	handled, err := chain.NewTypeHandler("Type1", failingWriter{}).Handle(chain.Request{Type: "Type1"})
	assert.True(t, handled)
	require.ErrorIs(t, err, errClosed)

	require.ErrorIs(t, chain.Demo(failingWriter{}), errClosed)
}

func TestBuild_Empty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, chain.Build())
}

func ExampleDemo() {
	_ = chain.Demo(os.Stdout)
	// Output:
	// Request handle
}
