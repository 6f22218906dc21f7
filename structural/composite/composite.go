// Package composite demonstrates the Composite pattern.
//
// Files and Folders share the Item interface, so a whole tree prints with a
// single call on its root.
package composite

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Item is a node of the file system tree.
type Item interface {
	Name() string
	// Print writes the node prefixed with depth dashes.
	Print(w io.Writer, depth int) error
}

// File is a leaf.
type File struct {
	name string
}

// NewFile returns a leaf named name.
func NewFile(name string) *File { return &File{name: name} }

func (f *File) Name() string { return f.name }

func (f *File) Print(w io.Writer, depth int) error {
	return printLine(w, depth, f.name)
}

// Folder is a composite; children print two levels deeper than the folder.
type Folder struct {
	name     string
	children []Item
}

// NewFolder returns an empty folder.
func NewFolder(name string) *Folder { return &Folder{name: name} }

func (f *Folder) Name() string { return f.name }

// Add appends child.
func (f *Folder) Add(child Item) {
	f.children = append(f.children, child)
}

// Remove deletes the first occurrence of child. Unknown children are ignored.
func (f *Folder) Remove(child Item) {
	if i := slices.Index(f.children, child); i >= 0 {
		f.children = slices.Delete(f.children, i, i+1)
	}
}

// Children returns the direct children.
func (f *Folder) Children() []Item {
	return slices.Clone(f.children)
}

func (f *Folder) Print(w io.Writer, depth int) error {
	if err := printLine(w, depth, f.name); err != nil {
		return err
	}
	for _, c := range f.children {
		if err := c.Print(w, depth+2); err != nil {
			return err
		}
	}
	return nil
}

func printLine(w io.Writer, depth int, name string) error {
	_, err := fmt.Fprintln(w, strings.Repeat("-", max(depth, 0))+name)
	return err
}

// Demo builds root{file1, usr{file2, file3}} and prints it from depth 1.
func Demo(w io.Writer) error {
	root := NewFolder("root")
	root.Add(NewFile("file1"))

	usr := NewFolder("usr")
	usr.Add(NewFile("file2"))
	usr.Add(NewFile("file3"))
	root.Add(usr)

	return root.Print(w, 1)
}
