// Package strategy demonstrates the Strategy pattern.
//
// PaymentProcessor holds one interchangeable PaymentStrategy and delegates to
// it; swapping the strategy changes how payments are made without touching the
// processor.
package strategy

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrNoStrategy is returned when a processor has no strategy configured.
var ErrNoStrategy = errors.New("strategy: no payment strategy")

// PaymentStrategy is one way of paying.
type PaymentStrategy interface {
	ProcessPayment(amount float64) error
}

// CreditCard pays by credit card.
type CreditCard struct{ Out io.Writer }

// ProcessPayment implements PaymentStrategy.
func (s CreditCard) ProcessPayment(amount float64) error {
	return pay(s.Out, amount, "Credit Card")
}

// BankTransfer pays by bank transfer.
type BankTransfer struct{ Out io.Writer }

// ProcessPayment implements PaymentStrategy.
func (s BankTransfer) ProcessPayment(amount float64) error {
	return pay(s.Out, amount, "Bank Transfer")
}

func pay(w io.Writer, amount float64, method string) error {
	_, err := fmt.Fprintf(w, "Paying %s TL with %s.\n", strconv.FormatFloat(amount, 'f', -1, 64), method)
	return err
}

// PaymentProcessor is the context that delegates to a strategy.
type PaymentProcessor struct {
	strategy PaymentStrategy
}

// NewPaymentProcessor returns a processor using s.
func NewPaymentProcessor(s PaymentStrategy) *PaymentProcessor {
	return &PaymentProcessor{strategy: s}
}

// SetStrategy swaps the strategy at runtime.
func (p *PaymentProcessor) SetStrategy(s PaymentStrategy) {
	p.strategy = s
}

// ProcessPayment pays amount with the current strategy.
func (p *PaymentProcessor) ProcessPayment(amount float64) error {
	if p.strategy == nil {
		return ErrNoStrategy
	}
	return p.strategy.ProcessPayment(amount)
}

// Demo pays once by credit card and once by bank transfer.
func Demo(w io.Writer) error {
	processor := NewPaymentProcessor(CreditCard{Out: w})
	if err := processor.ProcessPayment(100.50); err != nil {
		return err
	}

	processor = NewPaymentProcessor(BankTransfer{Out: w})
	return processor.ProcessPayment(200.75)
}
