// Package catalog holds the runnable pattern demos and the machinery to list,
// resolve and run them.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Category groups patterns the way the literature does.
type Category string

const (
	Behavioral Category = "behavioral"
	Creational Category = "creational"
	Structural Category = "structural"
)

// Categories lists every category in display order.
var Categories = []Category{Behavioral, Creational, Structural}

// ParseCategory accepts a category name in any case.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Categories, c) {
		return "", &UnknownCategoryError{Category: s}
	}
	return c, nil
}

// DemoFunc runs one demo, writing its output to w.
type DemoFunc func(ctx context.Context, w io.Writer) error

// Pattern is a catalog entry.
type Pattern struct {
	Name     string
	Category Category
	Summary  string
	Run      DemoFunc
}

// Registry resolves patterns by name.
//
// Expected usage:
//
//	p, ok, err := reg.Resolve("observer")
type Registry interface {
	Resolve(name string) (p Pattern, ok bool, err error)
}

// ErrRegistryPanic is returned if a registry implementation panics internally.
var ErrRegistryPanic = errors.New("registry: panic during Resolve")

// DuplicatePatternError is returned by Add when a name is already taken.
type DuplicatePatternError struct{ Name string }

func (e *DuplicatePatternError) Error() string {
	return "catalog: duplicate pattern " + strconv.Quote(e.Name)
}

// UnknownPatternError is returned when a name is not registered.
type UnknownPatternError struct{ Name string }

func (e *UnknownPatternError) Error() string {
	return "catalog: unknown pattern " + strconv.Quote(e.Name)
}

// UnknownCategoryError is returned for category names outside Categories.
type UnknownCategoryError struct{ Category string }

func (e *UnknownCategoryError) Error() string {
	return "catalog: unknown category " + strconv.Quote(e.Category)
}

// MapRegistry is a simple in-memory registry keyed by lowercase name.
type MapRegistry struct {
	items map[string]Pattern
}

func NewMapRegistry() *MapRegistry {
	return &MapRegistry{items: map[string]Pattern{}}
}

// Add stores p, failing if the name is empty, taken or p has no Run.
func (r *MapRegistry) Add(p Pattern) error {
	key := normalize(p.Name)
	switch {
	case key == "":
		return errors.New("catalog: pattern name is empty")
	case p.Run == nil:
		return fmt.Errorf("catalog: pattern %q has no demo", p.Name)
	case !slices.Contains(Categories, p.Category):
		return &UnknownCategoryError{Category: string(p.Category)}
	}
	if _, dup := r.items[key]; dup {
		return &DuplicatePatternError{Name: p.Name}
	}
	r.items[key] = p
	return nil
}

// Provide stores p and returns the registry for chaining. It panics on the
// errors Add reports.
func (r *MapRegistry) Provide(p Pattern) *MapRegistry {
	if err := r.Add(p); err != nil {
		panic(err)
	}
	return r
}

// Resolve implements Registry and converts panics into errors.
func (r *MapRegistry) Resolve(name string) (p Pattern, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			p = Pattern{}
			ok = false
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	p, ok = r.items[normalize(name)]
	return p, ok, nil
}

// Get returns the pattern if present (no panic).
func (r *MapRegistry) Get(name string) (Pattern, bool) {
	p, ok := r.items[normalize(name)]
	return p, ok
}

// MustGet returns the pattern or panics with an UnknownPatternError.
func (r *MapRegistry) MustGet(name string) Pattern {
	p, ok := r.items[normalize(name)]
	if !ok {
		panic(&UnknownPatternError{Name: name})
	}
	return p
}

// Lookup resolves every name, failing on the first unknown one.
func (r *MapRegistry) Lookup(names ...string) ([]Pattern, error) {
	out := make([]Pattern, 0, len(names))
	for _, n := range names {
		p, ok, err := r.Resolve(n)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &UnknownPatternError{Name: n}
		}
		out = append(out, p)
	}
	return out, nil
}

// List returns the patterns of category sorted by name; an empty category
// lists everything, ordered by category first.
func (r *MapRegistry) List(category Category) []Pattern {
	out := make([]Pattern, 0, len(r.items))
	for _, p := range r.items {
		if category == "" || p.Category == category {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b Pattern) int {
		if c := strings.Compare(string(a.Category), string(b.Category)); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Len returns the number of registered patterns.
func (r *MapRegistry) Len() int { return len(r.items) }

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
