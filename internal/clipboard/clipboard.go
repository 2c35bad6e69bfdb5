// Package clipboard is the write-only sink generated code is copied to.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when the platform has no clipboard utility
// (xclip, xsel, wl-copy, pbcopy or the Windows API).
var ErrUnsupported = errors.New("clipboard not available on this system")

type Writer interface {
	WriteText(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Func adapts a plain function to Writer.
type Func func(text string) error

func (f Func) WriteText(text string) error { return f(text) }

// Copy writes text to w and returns the message shown to the user.
func Copy(w Writer, text string) (string, error) {
	if w == nil {
		return "", ErrUnsupported
	}
	if err := w.WriteText(text); err != nil {
		return "", err
	}
	return "Code copied to clipboard!", nil
}
