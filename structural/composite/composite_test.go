package composite_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/sghaida/patterns/structural/composite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFolder_AddRemove(t *testing.T) {
	t.Parallel()

	f := composite.NewFolder("docs")
	a := composite.NewFile("a")
	b := composite.NewFile("b")
	f.Add(a)
	f.Add(b)
	f.Remove(a)
	f.Remove(composite.NewFile("ghost"))

	require.Len(t, f.Children(), 1)
	assert.Equal(t, "b", f.Children()[0].Name())
}

// TestPrint_Depth verifies nested folders indent two dashes per level.
func TestPrint_Depth(t *testing.T) {
	t.Parallel()

	inner := composite.NewFolder("inner")
	inner.Add(composite.NewFile("leaf"))
	outer := composite.NewFolder("outer")
	outer.Add(inner)

	var buf bytes.Buffer
	require.NoError(t, outer.Print(&buf, 0))
	assert.Equal(t, "outer\n--inner\n----leaf\n", buf.String())

	buf.Reset()
	require.NoError(t, composite.NewFile("x").Print(&buf, -3))
	assert.Equal(t, "x\n", buf.String())
}

func ExampleDemo() {
	_ = composite.Demo(os.Stdout)
	// Output:
	// -root
	// ---file1
	// ---usr
	// -----file2
	// -----file3
}
