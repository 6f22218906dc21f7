// Package observer demonstrates the Observer pattern.
//
// StockMarket is the subject: every price change is pushed to the registered
// observers in registration order.
package observer

import (
	"fmt"
	"io"
	"slices"
	"sync"
)

// Observer is notified of price changes.
type Observer interface {
	Update(price float64) error
}

// Subject manages observers.
type Subject interface {
	RegisterObserver(o Observer)
	RemoveObserver(o Observer)
	NotifyObservers() error
}

// StockMarket holds the current price.
type StockMarket struct {
	mu        sync.RWMutex
	observers []Observer
	price     float64
}

var _ Subject = (*StockMarket)(nil)

// Price returns the current price.
func (s *StockMarket) Price() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.price
}

// SetPrice stores the price and notifies every observer.
func (s *StockMarket) SetPrice(price float64) error {
	s.mu.Lock()
	s.price = price
	s.mu.Unlock()
	return s.NotifyObservers()
}

// RegisterObserver implements Subject.
func (s *StockMarket) RegisterObserver(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// RemoveObserver implements Subject. Removing an unknown observer is a no-op.
func (s *StockMarket) RemoveObserver(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := slices.Index(s.observers, o); i >= 0 {
		s.observers = slices.Delete(s.observers, i, i+1)
	}
}

// NotifyObservers implements Subject. It stops at the first failing observer.
func (s *StockMarket) NotifyObservers() error {
	s.mu.RLock()
	price := s.price
	observers := slices.Clone(s.observers)
	s.mu.RUnlock()

	for _, o := range observers {
		if err := o.Update(price); err != nil {
			return fmt.Errorf("observer: notify: %w", err)
		}
	}
	return nil
}

// StockTrader prints every price it is told about.
type StockTrader struct {
	name string
	out  io.Writer
}

// NewStockTrader returns a named trader writing to out.
func NewStockTrader(name string, out io.Writer) *StockTrader {
	return &StockTrader{name: name, out: out}
}

// Update implements Observer.
func (t *StockTrader) Update(price float64) error {
	_, err := fmt.Fprintf(t.out, "%s - Price updated: %.2f\n", t.name, price)
	return err
}

// Demo registers two traders and moves the price once.
func Demo(w io.Writer) error {
	var market StockMarket
	market.RegisterObserver(NewStockTrader("Trader 1", w))
	market.RegisterObserver(NewStockTrader("Trader 2", w))
	return market.SetPrice(100.50)
}
