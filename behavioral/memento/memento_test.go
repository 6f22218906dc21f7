package memento_test

import (
	"io"
	"os"
	"testing"

	"github.com/sghaida/patterns/behavioral/memento"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveRestore(t *testing.T) {
	t.Parallel()

	e := memento.NewTextEditor(io.Discard)
	require.NoError(t, e.SetText("v1"))
	snap := e.Save()
	require.NoError(t, e.SetText("v2"))

	assert.Equal(t, "v1", snap.Text())
	require.NoError(t, e.Restore(snap))
	assert.Equal(t, "v1", e.Text())
}

// TestHistory_UndoStack verifies snapshots come back newest first.
func TestHistory_UndoStack(t *testing.T) {
	t.Parallel()

	e := memento.NewTextEditor(io.Discard)
	var h memento.History

	for _, s := range []string{"a", "ab", "abc"} {
		require.NoError(t, e.SetText(s))
		h.Push(e.Save())
	}
	require.Equal(t, 3, h.Len())
	assert.Equal(t, "abc", h.Memento.Text())

	m, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, "abc", m.Text())
	assert.Equal(t, "ab", h.Memento.Text())

	_, _ = h.Pop()
	m, ok = h.Pop()
	require.True(t, ok)
	assert.Equal(t, "a", m.Text())
	assert.Empty(t, h.Memento.Text())

	_, ok = h.Pop()
	assert.False(t, ok)
}

func ExampleDemo() {
	_ = memento.Demo(os.Stdout)
	// Output:
	// Current text: Hello, World!
	// Current text: Goodbye, World!
	// Restored text: Hello, World!
}
