// Package document reads and writes markdown files and exports them as
// standalone HTML.
package document

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

// ErrUnsupportedFile is returned by Open for files that are not markdown or
// plain text.
var ErrUnsupportedFile = errors.New("document: unsupported file type")

// UntitledName is used when a document has no name.
const UntitledName = "Untitled"

var openExts = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
}

// Document is an opened file.
type Document struct {
	// Name is the file's base name without its extension.
	Name string
	Path string
	Text string
}

// Open reads a .md, .markdown or .txt file. Line endings become "\n" and the
// text is NFC-normalised so that grapheme columns are stable.
func Open(path string) (Document, error) {
	doc, err := OpenRaw(path)
	if err != nil {
		return Document{}, err
	}
	doc.Text = Normalize(doc.Text)
	return doc, nil
}

// OpenRaw is Open without normalisation: Text holds the file's bytes as
// stored.
func OpenRaw(path string) (Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !openExts[ext] {
		return Document{}, errors.Wrapf(ErrUnsupportedFile, "%s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, errors.Wrapf(err, "open %s", path)
	}
	base := filepath.Base(path)
	return Document{
		Name: strings.TrimSuffix(base, filepath.Ext(base)),
		Path: path,
		Text: string(data),
	}, nil
}

// Normalize converts CRLF and CR line endings to LF and applies NFC.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return norm.NFC.String(text)
}

// FileName turns a document name into a file base name: every character
// outside [A-Za-z0-9] becomes '_' and the result is lower-cased. An empty
// name becomes "untitled".
func FileName(name string) string {
	if name == "" {
		name = UntitledName
	}
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(r + ('a' - 'A'))
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// Save writes text to <dir>/<FileName(name)>.md and returns the path.
func Save(dir, name, text string) (string, error) {
	path := filepath.Join(dir, FileName(name)+".md")
	if err := writeFile(path, []byte(text)); err != nil {
		return "", err
	}
	return path, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create directory for %s", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
