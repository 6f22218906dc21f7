// Package visitor demonstrates the Visitor pattern.
//
// Document elements accept a Visitor and dispatch to the method for their own
// type, so new export formats are added as new visitors without changing the
// element types.
package visitor

import (
	"fmt"
	"io"
)

// Element is a node of a Document.
type Element interface {
	Accept(v Visitor) error
}

// Visitor is an operation over every element type.
type Visitor interface {
	VisitTextElement(e *TextElement) error
	VisitImageElement(e *ImageElement) error
}

// TextElement is a run of text.
type TextElement struct {
	Text string
}

// Accept implements Element.
func (e *TextElement) Accept(v Visitor) error { return v.VisitTextElement(e) }

// ImageElement references an image file.
type ImageElement struct {
	ImagePath string
}

// Accept implements Element.
func (e *ImageElement) Accept(v Visitor) error { return v.VisitImageElement(e) }

// HTMLExportVisitor reports an HTML export of each element.
type HTMLExportVisitor struct {
	Out io.Writer
}

func (h HTMLExportVisitor) VisitTextElement(e *TextElement) error {
	_, err := fmt.Fprintf(h.Out, "Exporting text element with text: %s to HTML\n", e.Text)
	return err
}

func (h HTMLExportVisitor) VisitImageElement(e *ImageElement) error {
	_, err := fmt.Fprintf(h.Out, "Exporting image element with path: %s to HTML\n", e.ImagePath)
	return err
}

// MarkdownExportVisitor renders elements as Markdown.
type MarkdownExportVisitor struct {
	Out io.Writer
}

func (m MarkdownExportVisitor) VisitTextElement(e *TextElement) error {
	_, err := fmt.Fprintln(m.Out, e.Text)
	return err
}

func (m MarkdownExportVisitor) VisitImageElement(e *ImageElement) error {
	_, err := fmt.Fprintf(m.Out, "![](%s)\n", e.ImagePath)
	return err
}

// Document is the object structure.
type Document struct {
	elements []Element
}

// Attach appends an element.
func (d *Document) Attach(e Element) {
	d.elements = append(d.elements, e)
}

// Export visits every element in attach order.
func (d *Document) Export(v Visitor) error {
	for _, e := range d.elements {
		if err := e.Accept(v); err != nil {
			return fmt.Errorf("visitor: export: %w", err)
		}
	}
	return nil
}

// Demo exports a two-element document to HTML.
func Demo(w io.Writer) error {
	var doc Document
	doc.Attach(&TextElement{Text: "Hello, Visitor Pattern!"})
	doc.Attach(&ImageElement{ImagePath: "image.jpg"})
	return doc.Export(HTMLExportVisitor{Out: w})
}
