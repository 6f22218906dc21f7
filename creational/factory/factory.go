// Package factory demonstrates a simple factory.
//
// CreateLogFile maps a LogType to the matching LogFile implementation, so the
// caller never names the concrete type.
package factory

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidLogType is returned for LogType values CreateLogFile does not know.
var ErrInvalidLogType = errors.New("factory: invalid log type")

// LogType selects the log file format.
type LogType int

const (
	TextFile LogType = iota
	XMLFile
	JSONFile
)

var logTypeNames = map[LogType]string{
	TextFile: "text",
	XMLFile:  "xml",
	JSONFile: "json",
}

func (t LogType) String() string {
	if name, ok := logTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("LogType(%d)", int(t))
}

// ParseLogType parses "text", "xml" or "json" (case-insensitive).
func ParseLogType(s string) (LogType, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for t, name := range logTypeNames {
		if name == want {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLogType, s)
}

// LogFile is the product.
type LogFile interface {
	Write(message string) error
}

// prefixed writes "<prefix>: <message>" lines; every concrete log file is one.
type prefixed struct {
	prefix string
	out    io.Writer
}

func (p prefixed) Write(message string) error {
	_, err := fmt.Fprintf(p.out, "%s: %s\n", p.prefix, message)
	return err
}

// Text is a plain-text log file.
type Text struct{ prefixed }

// XML is an XML log file.
type XML struct{ prefixed }

// JSON is a JSON log file.
type JSON struct{ prefixed }

// CreateLogFile returns the LogFile for t writing to out.
func CreateLogFile(t LogType, out io.Writer) (LogFile, error) {
	switch t {
	case TextFile:
		return Text{prefixed{prefix: "Text", out: out}}, nil
	case XMLFile:
		return XML{prefixed{prefix: "Xml", out: out}}, nil
	case JSONFile:
		return JSON{prefixed{prefix: "Json", out: out}}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidLogType, t)
	}
}

// Demo writes one message through a log file of type t.
func Demo(w io.Writer, t LogType) error {
	log, err := CreateLogFile(t, w)
	if err != nil {
		return err
	}
	return log.Write("Log message")
}
