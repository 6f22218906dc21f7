// Package iterator demonstrates the Iterator pattern.
//
// Aggregate hides its storage; callers walk it through an Iterator (explicit
// HasNext/Next protocol) or through the range-over-func sequence returned by All.
package iterator

import (
	"fmt"
	"io"
	"iter"
)

// Iterator walks an aggregate sequentially.
type Iterator[T any] interface {
	HasNext() bool
	// Next returns the current element and advances. Past the end it returns the
	// zero value and false without advancing.
	Next() (T, bool)
}

// Collection is anything that can hand out an Iterator.
type Collection[T any] interface {
	Iterator() Iterator[T]
}

var _ Collection[int] = (*Aggregate[int])(nil)

// Aggregate is an ordered collection of items.
type Aggregate[T any] struct {
	items []T
}

// Add appends an item.
func (a *Aggregate[T]) Add(item T) {
	a.items = append(a.items, item)
}

// Len returns the number of items.
func (a *Aggregate[T]) Len() int { return len(a.items) }

// At returns the item at index i.
func (a *Aggregate[T]) At(i int) T { return a.items[i] }

// Iterator returns a fresh iterator positioned at the first item.
func (a *Aggregate[T]) Iterator() Iterator[T] {
	return &aggregateIterator[T]{aggregate: a}
}

// All returns the items as a sequence usable with range.
func (a *Aggregate[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := a.Iterator()
		for it.HasNext() {
			v, _ := it.Next()
			if !yield(v) {
				return
			}
		}
	}
}

type aggregateIterator[T any] struct {
	aggregate *Aggregate[T]
	index     int
}

func (it *aggregateIterator[T]) HasNext() bool {
	return it.index < it.aggregate.Len()
}

func (it *aggregateIterator[T]) Next() (T, bool) {
	if !it.HasNext() {
		var zero T
		return zero, false
	}
	v := it.aggregate.At(it.index)
	it.index++
	return v, true
}

// Demo fills an aggregate with "1", "2", "3" and prints them through an iterator.
func Demo(w io.Writer) error {
	var aggregate Aggregate[string]
	aggregate.Add("1")
	aggregate.Add("2")
	aggregate.Add("3")

	it := aggregate.Iterator()
	for it.HasNext() {
		v, _ := it.Next()
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}
