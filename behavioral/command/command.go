// Package command demonstrates the Command pattern.
//
// An operation on a Receiver is wrapped in a Command value. The Invoker only
// knows the Command interface, so the action bound to it can be swapped without
// touching the invoker.
package command

import (
	"errors"
	"fmt"
	"io"
)

// ErrNoCommand is returned by Invoker.ExecuteCommand when no command was set.
var ErrNoCommand = errors.New("command: no command set")

// Command is an executable operation.
type Command interface {
	Execute() error
}

// Func adapts a plain function into a Command.
type Func func() error

// Execute implements Command.
func (f Func) Execute() error { return f() }

// Receiver performs the actual work.
type Receiver struct {
	out io.Writer
}

// NewReceiver returns a Receiver writing to out.
func NewReceiver(out io.Writer) *Receiver {
	return &Receiver{out: out}
}

// Action is the operation the concrete command delegates to.
func (r *Receiver) Action() error {
	_, err := fmt.Fprintln(r.out, "Receiver.Action() method worked.")
	return err
}

// ConcreteCommand binds a Receiver to the Command interface.
type ConcreteCommand struct {
	receiver *Receiver
}

// NewConcreteCommand returns a command invoking receiver.Action.
func NewConcreteCommand(receiver *Receiver) *ConcreteCommand {
	return &ConcreteCommand{receiver: receiver}
}

// Execute implements Command.
func (c *ConcreteCommand) Execute() error {
	return c.receiver.Action()
}

// Invoker triggers the configured command and records every successful run.
type Invoker struct {
	command Command
	history []Command
}

// SetCommand replaces the command the invoker runs.
func (i *Invoker) SetCommand(c Command) {
	i.command = c
}

// ExecuteCommand runs the current command.
func (i *Invoker) ExecuteCommand() error {
	if i.command == nil {
		return ErrNoCommand
	}
	if err := i.command.Execute(); err != nil {
		return fmt.Errorf("command: execute: %w", err)
	}
	i.history = append(i.history, i.command)
	return nil
}

// History returns the commands executed successfully, oldest first.
func (i *Invoker) History() []Command {
	out := make([]Command, len(i.history))
	copy(out, i.history)
	return out
}

// Demo binds a receiver to a command and runs it through an invoker.
func Demo(w io.Writer) error {
	receiver := NewReceiver(w)
	cmd := NewConcreteCommand(receiver)

	var invoker Invoker
	invoker.SetCommand(cmd)
	return invoker.ExecuteCommand()
}
