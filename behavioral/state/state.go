// Package state demonstrates the State pattern.
//
// An Order delegates ProcessOrder to its current State, so its behaviour
// changes whenever the state is swapped, either explicitly via SetState or by
// walking the lifecycle with Advance.
package state

import (
	"errors"
	"fmt"
	"io"
)

// ErrFinalState is returned by Order.Advance when the order is already delivered.
var ErrFinalState = errors.New("state: order already in final state")

// State is one stage of an order's lifecycle.
type State interface {
	Name() string
	ProcessOrder(o *Order) error
	// Next returns the following lifecycle stage, or nil for the final one.
	Next() State
}

// Order is the context object.
type Order struct {
	current State
	out     io.Writer
}

// NewOrder returns a pending order reporting to out.
func NewOrder(out io.Writer) *Order {
	return &Order{current: PendingState{}, out: out}
}

// State returns the current state.
func (o *Order) State() State { return o.current }

// SetState replaces the current state.
func (o *Order) SetState(s State) {
	o.current = s
}

// ProcessOrder runs the behaviour of the current state.
func (o *Order) ProcessOrder() error {
	return o.current.ProcessOrder(o)
}

// Advance moves the order to the next lifecycle stage.
func (o *Order) Advance() error {
	next := o.current.Next()
	if next == nil {
		return ErrFinalState
	}
	o.current = next
	return nil
}

func (o *Order) say(msg string) error {
	_, err := fmt.Fprintln(o.out, msg)
	return err
}

// PendingState is the initial state.
type PendingState struct{}

func (PendingState) Name() string { return "pending" }
func (PendingState) Next() State { return PreparingState{} }
func (PendingState) ProcessOrder(o *Order) error {
	return o.say("Order is pending. Waiting for processing.")
}

// PreparingState is entered once the order is being packed.
type PreparingState struct{}

func (PreparingState) Name() string { return "preparing" }
func (PreparingState) Next() State { return ShippedState{} }
func (PreparingState) ProcessOrder(o *Order) error {
	return o.say("Order is being prepared.")
}

// ShippedState is entered once the order left the warehouse.
type ShippedState struct{}

func (ShippedState) Name() string { return "shipped" }
func (ShippedState) Next() State { return DeliveredState{} }
func (ShippedState) ProcessOrder(o *Order) error {
	return o.say("Order has been shipped to the customer.")
}

// DeliveredState is final.
type DeliveredState struct{}

func (DeliveredState) Name() string { return "delivered" }
func (DeliveredState) Next() State { return nil }
func (DeliveredState) ProcessOrder(o *Order) error {
	return o.say("Order has been delivered.")
}

// Demo processes a pending order, ships it and processes it again.
func Demo(w io.Writer) error {
	order := NewOrder(w)
	if err := order.ProcessOrder(); err != nil {
		return err
	}
	order.SetState(ShippedState{})
	return order.ProcessOrder()
}
