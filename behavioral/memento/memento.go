// Package memento demonstrates the Memento pattern.
//
// TextEditor snapshots its text into an opaque Memento. A History keeps
// snapshots so the editor can be rolled back without exposing its internals.
package memento

import (
	"fmt"
	"io"
)

// Memento is an immutable snapshot of a TextEditor.
type Memento struct {
	text string
}

// Text returns the snapshotted text.
func (m Memento) Text() string { return m.text }

// TextEditor is the originator.
type TextEditor struct {
	text string
	out  io.Writer
}

// NewTextEditor returns an empty editor echoing changes to out.
func NewTextEditor(out io.Writer) *TextEditor {
	return &TextEditor{out: out}
}

// Text returns the current text.
func (e *TextEditor) Text() string { return e.text }

// SetText replaces the text and echoes it.
func (e *TextEditor) SetText(v string) error {
	if _, err := fmt.Fprintln(e.out, "Current text: "+v); err != nil {
		return err
	}
	e.text = v
	return nil
}

// Save snapshots the current text.
func (e *TextEditor) Save() Memento {
	return Memento{text: e.text}
}

// Restore rolls the editor back to m and echoes the restored text.
func (e *TextEditor) Restore(m Memento) error {
	e.text = m.text
	_, err := fmt.Fprintln(e.out, "Restored text: "+e.text)
	return err
}

// History is the caretaker. Memento holds the last saved snapshot; the stack
// supports multi-level undo.
type History struct {
	Memento Memento
	stack   []Memento
}

// Push saves m on the undo stack and makes it the current snapshot.
func (h *History) Push(m Memento) {
	h.Memento = m
	h.stack = append(h.stack, m)
}

// Pop removes and returns the most recent snapshot.
func (h *History) Pop() (Memento, bool) {
	if len(h.stack) == 0 {
		return Memento{}, false
	}
	m := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]
	if len(h.stack) > 0 {
		h.Memento = h.stack[len(h.stack)-1]
	} else {
		h.Memento = Memento{}
	}
	return m, true
}

// Len returns the undo depth.
func (h *History) Len() int { return len(h.stack) }

// Demo edits, snapshots, edits again and restores the snapshot.
func Demo(w io.Writer) error {
	editor := NewTextEditor(w)
	var history History

	if err := editor.SetText("Hello, World!"); err != nil {
		return err
	}
	history.Memento = editor.Save()

	if err := editor.SetText("Goodbye, World!"); err != nil {
		return err
	}
	return editor.Restore(history.Memento)
}
