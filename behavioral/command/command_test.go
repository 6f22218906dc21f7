package command_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/sghaida/patterns/behavioral/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockCommand records Execute calls.
type mockCommand struct {
	mock.Mock
}

func (m *mockCommand) Execute() error {
	args := m.Called()
	return args.Error(0)
}

func TestInvoker_NoCommand(t *testing.T) {
	t.Parallel()

	var inv command.Invoker
	err := inv.ExecuteCommand()
	require.ErrorIs(t, err, command.ErrNoCommand)
	assert.Empty(t, inv.History())
}

// TestInvoker_ExecutesAndRecords verifies successful runs land in the history.
func TestInvoker_ExecutesAndRecords(t *testing.T) {
	t.Parallel()

	m := &mockCommand{}
	m.On("Execute").Return(nil).Twice()

	var inv command.Invoker
	inv.SetCommand(m)
	require.NoError(t, inv.ExecuteCommand())
	require.NoError(t, inv.ExecuteCommand())

	m.AssertExpectations(t)
	assert.Len(t, inv.History(), 2)
}

// TestInvoker_FailureWrapped verifies command errors are wrapped and not recorded.
func TestInvoker_FailureWrapped(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	var inv command.Invoker
	inv.SetCommand(command.Func(func() error { return boom }))

	err := inv.ExecuteCommand()
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "command: execute")
	assert.Empty(t, inv.History())
}

func TestConcreteCommand_CallsReceiver(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cmd := command.NewConcreteCommand(command.NewReceiver(&buf))

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Receiver.Action() method worked.\n", buf.String())
}

// TestHistory_ReturnsCopy verifies callers cannot mutate the invoker's history.
func TestHistory_ReturnsCopy(t *testing.T) {
	t.Parallel()

	var inv command.Invoker
	inv.SetCommand(command.Func(func() error { return nil }))
	require.NoError(t, inv.ExecuteCommand())

	h := inv.History()
	h[0] = nil
	assert.NotNil(t, inv.History()[0])
}

func ExampleDemo() {
	_ = command.Demo(os.Stdout)
	// Output:
	// Receiver.Action() method worked.
}
