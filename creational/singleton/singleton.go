// Package singleton demonstrates the Singleton pattern.
//
// Holder guards one lazily initialised instance behind a mutex: the first
// non-nil value passed to Instance wins and every later caller receives it,
// whatever they pass. Instance is the process-wide form with one holder per
// type parameter.
//
//	first := singleton.Instance(&Connection{ConnectionString: "firstConnection"})
//	second := singleton.Instance(&Connection{ConnectionString: "secondConnection"})
//	// first == second, both "firstConnection"
package singleton

import (
	"fmt"
	"io"
	"reflect"
	"sync"
)

// Holder owns a single shared *T.
type Holder[T any] struct {
	mu       sync.Mutex
	instance *T
}

// Instance returns the shared instance, storing v if none exists yet.
// A nil v never initialises the holder.
func (h *Holder[T]) Instance(v *T) *T {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.instance == nil {
		h.instance = v
	}
	return h.instance
}

// Get returns the shared instance without initialising it.
func (h *Holder[T]) Get() (*T, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.instance, h.instance != nil
}

var (
	holdersMu sync.Mutex
	holders   = map[reflect.Type]any{}
)

func holderFor[T any]() *Holder[T] {
	key := reflect.TypeFor[T]()

	holdersMu.Lock()
	defer holdersMu.Unlock()
	if h, ok := holders[key]; ok {
		return h.(*Holder[T])
	}
	h := &Holder[T]{}
	holders[key] = h
	return h
}

// Instance is the process-wide singleton accessor for type T.
func Instance[T any](v *T) *T {
	return holderFor[T]().Instance(v)
}

// Connection is the sample shared resource.
type Connection struct {
	ConnectionString string
}

// Demo asks twice for the shared connection with different arguments and
// prints what each caller got. It uses its own holder so repeated runs start fresh.
func Demo(w io.Writer) error {
	var h Holder[Connection]
	first := h.Instance(&Connection{ConnectionString: "firstConnection"})
	second := h.Instance(&Connection{ConnectionString: "secondConnection"})

	_, err := fmt.Fprintln(w, first.ConnectionString+" "+second.ConnectionString)
	return err
}
