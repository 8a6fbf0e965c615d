package editor

import (
	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
)

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; the editor ignores them.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// SystemClipboard uses the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) {
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", errors.Wrap(err, "read clipboard")
	}
	return s, nil
}

func (SystemClipboard) WriteText(s string) error {
	return errors.Wrap(clipboard.WriteAll(s), "write clipboard")
}
