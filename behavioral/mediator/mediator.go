// Package mediator demonstrates the Mediator pattern.
//
// Users never talk to each other directly. Every message goes through a
// Mediator, which announces it and delivers it to every other participant.
package mediator

import (
	"fmt"
	"io"
	"sync"
)

// Mediator routes messages between users.
type Mediator interface {
	Register(u User)
	SendMessage(message string, from User) error
}

// User is a chat participant.
type User interface {
	Name() string
	SendMessage(message string) error
	ReceiveMessage(message string) error
}

// ChatMediator announces messages on out and fans them out to the other
// registered users in registration order.
type ChatMediator struct {
	out   io.Writer
	mu    sync.RWMutex
	users []User
}

// NewChatMediator returns a mediator writing announcements to out.
func NewChatMediator(out io.Writer) *ChatMediator {
	return &ChatMediator{out: out}
}

// Register adds u to the room. Registering the same user twice is a no-op.
func (m *ChatMediator) Register(u User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing == u {
			return
		}
	}
	m.users = append(m.users, u)
}

// Users returns the registered users.
func (m *ChatMediator) Users() []User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]User, len(m.users))
	copy(out, m.users)
	return out
}

// SendMessage implements Mediator.
func (m *ChatMediator) SendMessage(message string, from User) error {
	if _, err := fmt.Fprintf(m.out, "%s sent a message: %s\n", from.Name(), message); err != nil {
		return err
	}
	for _, u := range m.Users() {
		if u == from {
			continue
		}
		if err := u.ReceiveMessage(message); err != nil {
			return fmt.Errorf("mediator: deliver to %s: %w", u.Name(), err)
		}
	}
	return nil
}

// ChatUser is the default User implementation.
type ChatUser struct {
	mediator Mediator
	name     string
	out      io.Writer
}

// NewUser creates a user and registers it with m.
func NewUser(m Mediator, name string, out io.Writer) *ChatUser {
	u := &ChatUser{mediator: m, name: name, out: out}
	m.Register(u)
	return u
}

// Name implements User.
func (u *ChatUser) Name() string { return u.name }

// SendMessage implements User.
func (u *ChatUser) SendMessage(message string) error {
	return u.mediator.SendMessage(message, u)
}

// ReceiveMessage implements User.
func (u *ChatUser) ReceiveMessage(message string) error {
	_, err := fmt.Fprintf(u.out, "%s received a message: %s\n", u.name, message)
	return err
}

// Demo lets Alice and Bob exchange one message each through a chat mediator.
func Demo(w io.Writer) error {
	m := NewChatMediator(w)
	alice := NewUser(m, "Alice", w)
	bob := NewUser(m, "Bob", w)

	if err := alice.SendMessage("Hello, Bob!"); err != nil {
		return err
	}
	return bob.SendMessage("Hi, Alice!")
}
