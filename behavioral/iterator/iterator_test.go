package iterator_test

import (
	"os"
	"slices"
	"testing"

	"github.com/sghaida/patterns/behavioral/iterator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator_WalksInOrder(t *testing.T) {
	t.Parallel()

	var a iterator.Aggregate[int]
	for i := 1; i <= 3; i++ {
		a.Add(i)
	}

	var got []int
	it := a.Iterator()
	for it.HasNext() {
		v, ok := it.Next()
		require.True(t, ok)
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

// TestIterator_PastEnd verifies Next past the end yields the zero value and false.
func TestIterator_PastEnd(t *testing.T) {
	t.Parallel()

	var a iterator.Aggregate[string]
	a.Add("only")

	it := a.Iterator()
	v, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, "only", v)

	v, ok = it.Next()
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.False(t, it.HasNext())
}

// TestIterator_Independent verifies two iterators over one aggregate do not share position.
func TestIterator_Independent(t *testing.T) {
	t.Parallel()

	var a iterator.Aggregate[string]
	a.Add("x")
	a.Add("y")

	it1 := a.Iterator()
	_, _ = it1.Next()

	it2 := a.Iterator()
	v, ok := it2.Next()
	require.True(t, ok)
	assert.Equal(t, "x", v)
}

func TestAll_RangeAndEarlyStop(t *testing.T) {
	t.Parallel()

	var a iterator.Aggregate[string]
	for _, s := range []string{"a", "b", "c"} {
		a.Add(s)
	}
	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(a.All()))

	var first []string
	for v := range a.All() {
		first = append(first, v)
		break
	}
	assert.Equal(t, []string{"a"}, first)

	var empty iterator.Aggregate[string]
	assert.Empty(t, slices.Collect(empty.All()))
}

func ExampleDemo() {
	_ = iterator.Demo(os.Stdout)
	// Output:
	// 1
	// 2
	// 3
}
