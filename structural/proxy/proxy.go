// Package proxy demonstrates the Proxy pattern.
//
// Proxy stands in for RealSubject: it announces each request, creates the real
// subject on first use and forwards to it.
package proxy

import (
	"fmt"
	"io"
	"sync"
)

// Subject is the interface shared by the proxy and the real object.
type Subject interface {
	Request() error
}

// RealSubject does the actual work.
type RealSubject struct {
	out io.Writer
}

func (r *RealSubject) Request() error {
	_, err := fmt.Fprintln(r.out, "Operation")
	return err
}

// Proxy controls access to a lazily created RealSubject.
type Proxy struct {
	out io.Writer

	mu       sync.Mutex
	real     *RealSubject
	requests int
}

// NewProxy returns a proxy writing to out. The real subject is not created yet.
func NewProxy(out io.Writer) *Proxy {
	return &Proxy{out: out}
}

// Request implements Subject.
func (p *Proxy) Request() error {
	if _, err := fmt.Fprintln(p.out, "A request is made from the proxy."); err != nil {
		return err
	}
	p.mu.Lock()
	if p.real == nil {
		p.real = &RealSubject{out: p.out}
	}
	subject := p.real
	p.requests++
	p.mu.Unlock()

	return subject.Request()
}

// Requests returns how many requests went through the proxy.
func (p *Proxy) Requests() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requests
}

// Initialized reports whether the real subject has been created.
func (p *Proxy) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.real != nil
}

// Demo sends one request through the proxy.
func Demo(w io.Writer) error {
	var subject Subject = NewProxy(w)
	return subject.Request()
}
