// Package chain demonstrates the Chain of Responsibility pattern.
//
// A Request is passed along a chain of Handlers. Each handler either processes
// the request or forwards it to its successor. A request that reaches the end of
// the chain unhandled is dropped and Handle reports false.
//
//	h1 := chain.NewTypeHandler("Type1", w)
//	h1.SetNext(chain.NewTypeHandler("Type2", w))
//	handled, err := h1.Handle(chain.Request{Type: "Type2"}) // prints "Request handle"
package chain

import (
	"fmt"
	"io"
)

// Request is the unit of work passed along the chain.
type Request struct {
	Type string
}

// Handler is one link of the chain.
type Handler interface {
	// SetNext sets the successor and returns it so chains can be built fluently:
	//
	//	h1.SetNext(h2).SetNext(h3)
	SetNext(next Handler) Handler

	// Handle processes req or forwards it. It reports whether any handler in the
	// remaining chain processed the request, and the first error a handler hit.
	Handle(req Request) (bool, error)
}

// link holds the successor pointer shared by the concrete handlers.
type link struct {
	next Handler
}

func (l *link) SetNext(next Handler) Handler {
	l.next = next
	return next
}

func (l *link) forward(req Request) (bool, error) {
	if l.next == nil {
		return false, nil
	}
	return l.next.Handle(req)
}

// TypeHandler handles requests of exactly one type.
type TypeHandler struct {
	link
	accepts string
	out     io.Writer
}

// NewTypeHandler returns a handler that processes requests whose Type equals
// accepts, writing "Request handle" to out.
func NewTypeHandler(accepts string, out io.Writer) *TypeHandler {
	return &TypeHandler{accepts: accepts, out: out}
}

// Accepts returns the request type this handler processes.
func (h *TypeHandler) Accepts() string { return h.accepts }

// Handle implements Handler.
func (h *TypeHandler) Handle(req Request) (bool, error) {
	if req.Type != h.accepts {
		return h.forward(req)
	}
	if _, err := fmt.Fprintln(h.out, "Request handle"); err != nil {
		return true, fmt.Errorf("chain: handle %s: %w", req.Type, err)
	}
	return true, nil
}

// HandlerFunc adapts a plain function into a Handler. The function returns
// true when it processed the request; otherwise the request is forwarded.
// An error stops the chain.
type HandlerFunc struct {
	link
	fn func(Request) (bool, error)
}

// Func wraps fn as a Handler.
func Func(fn func(Request) (bool, error)) *HandlerFunc {
	return &HandlerFunc{fn: fn}
}

// Handle implements Handler.
func (h *HandlerFunc) Handle(req Request) (bool, error) {
	if h.fn != nil {
		handled, err := h.fn(req)
		if err != nil || handled {
			return handled, err
		}
	}
	return h.forward(req)
}

// Build links handlers in the given order and returns the head of the chain.
// It returns nil when no handlers are given.
func Build(handlers ...Handler) Handler {
	if len(handlers) == 0 {
		return nil
	}
	for i := 0; i < len(handlers)-1; i++ {
		handlers[i].SetNext(handlers[i+1])
	}
	return handlers[0]
}

// Demo wires two type handlers and sends a Type2 request through the chain.
func Demo(w io.Writer) error {
	handler1 := NewTypeHandler("Type1", w)
	handler2 := NewTypeHandler("Type2", w)
	handler1.SetNext(handler2)

	handled, err := handler1.Handle(Request{Type: "Type2"})
	if err != nil {
		return err
	}
	if !handled {
		return fmt.Errorf("chain: request %q was not handled", "Type2")
	}
	return nil
}
