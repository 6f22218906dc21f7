// Package abstractfactory demonstrates the Abstract Factory pattern.
//
// A UIFactory creates a family of related widgets (a button and a text box).
// Application only talks to the abstract interfaces, so switching the whole
// family means passing a different factory.
package abstractfactory

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrUnknownPlatform is returned by FactoryFor for unsupported platforms.
var ErrUnknownPlatform = errors.New("abstractfactory: unknown platform")

// Button is a clickable widget.
type Button interface {
	Paint() error
}

// TextBox is a text input widget.
type TextBox interface {
	Draw() error
}

// UIFactory creates one family of widgets.
type UIFactory interface {
	CreateButton() Button
	CreateTextBox() TextBox
}

// widget prints "<name> Created" when rendered; it backs every concrete product.
type widget struct {
	name string
	out  io.Writer
}

func (w widget) render() error {
	_, err := fmt.Fprintf(w.out, "%s Created\n", w.name)
	return err
}

type winButton struct{ widget }

func (b winButton) Paint() error { return b.render() }

type winTextBox struct{ widget }

func (t winTextBox) Draw() error { return t.render() }

type webButton struct{ widget }

func (b webButton) Paint() error { return b.render() }

type webTextBox struct{ widget }

func (t webTextBox) Draw() error { return t.render() }

// WinUIFactory creates desktop widgets.
type WinUIFactory struct{ Out io.Writer }

func (f WinUIFactory) CreateButton() Button {
	return winButton{widget{name: "WinButton", out: f.Out}}
}

func (f WinUIFactory) CreateTextBox() TextBox {
	return winTextBox{widget{name: "WinTextBox", out: f.Out}}
}

// WebUIFactory creates browser widgets.
type WebUIFactory struct{ Out io.Writer }

func (f WebUIFactory) CreateButton() Button {
	return webButton{widget{name: "WebButton", out: f.Out}}
}

func (f WebUIFactory) CreateTextBox() TextBox {
	return webTextBox{widget{name: "WebTextBox", out: f.Out}}
}

// FactoryFor returns the factory for platform ("win" or "web", case-insensitive).
func FactoryFor(platform string, out io.Writer) (UIFactory, error) {
	switch strings.ToLower(platform) {
	case "win":
		return WinUIFactory{Out: out}, nil
	case "web":
		return WebUIFactory{Out: out}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlatform, strconv.Quote(platform))
	}
}

// Application is the client; it never names a concrete widget type.
type Application struct {
	button  Button
	textBox TextBox
}

// NewApplication builds the widgets from factory.
func NewApplication(factory UIFactory) *Application {
	return &Application{
		button:  factory.CreateButton(),
		textBox: factory.CreateTextBox(),
	}
}

// Paint renders the button then the text box.
func (a *Application) Paint() error {
	if err := a.button.Paint(); err != nil {
		return err
	}
	return a.textBox.Draw()
}

// Demo paints an application built from the desktop factory.
func Demo(w io.Writer) error {
	return NewApplication(WinUIFactory{Out: w}).Paint()
}
