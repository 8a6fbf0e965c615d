package document

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Notes.Draft.md")
	require.NoError(t, os.WriteFile(path, []byte("a\r\nb\rc\ne\u0301"), 0o644))

	doc, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "Notes.Draft", doc.Name)
	assert.Equal(t, path, doc.Path)
	assert.Equal(t, "a\nb\nc\n\u00e9", doc.Text)
}

func TestOpenRawKeepsBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.md")
	require.NoError(t, os.WriteFile(path, []byte("a\r\ne\u0301"), 0o644))

	doc, err := OpenRaw(path)
	require.NoError(t, err)
	assert.Equal(t, "raw", doc.Name)
	assert.Equal(t, "a\r\ne\u0301", doc.Text)

	_, err = OpenRaw(filepath.Join(t.TempDir(), "x.png"))
	assert.ErrorIs(t, err, ErrUnsupportedFile)
}

func TestOpenUnsupported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.png")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := Open(path)
	assert.ErrorIs(t, err, ErrUnsupportedFile)
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "untitled"},
		{"Untitled", "untitled"},
		{"My Notes", "my_notes"},
		{"draft-2.v1", "draft_2_v1"},
		{"caf\u00e9", "caf_"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FileName(tt.in), tt.in)
	}
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	path, err := Save(dir, "My Notes", "# hi\n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "my_notes.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# hi\n", string(data))
}

func TestRenderHTML(t *testing.T) {
	out, err := RenderHTML("# Title\n\n**bold** ~~gone~~\n\n| a | b |\n| - | - |\n| 1 | 2 |\n")
	require.NoError(t, err)
	assert.Contains(t, out, `<h1 id="title">Title</h1>`)
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.Contains(t, out, "<del>gone</del>")
	assert.Contains(t, out, "<table>")
}

func TestRenderHTMLHighlightsCode(t *testing.T) {
	out, err := RenderHTML("```go\nfunc main() {}\n```\n")
	require.NoError(t, err)
	assert.Contains(t, out, "<pre")
	assert.Contains(t, out, `style="`)
	assert.Contains(t, out, "main")
	assert.NotContains(t, out, `class="language-go"`)
}

func TestExportHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportHTML(&buf, "", "hello <world>"))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Untitled</title>")
	assert.Contains(t, out, "background-color: #0d1117;")
	assert.Contains(t, out, "<p>hello")
}

func TestExportHTMLEscapesTitle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportHTML(&buf, "<b>", "x"))
	assert.Contains(t, buf.String(), "<title>&lt;b&gt;</title>")
}

func TestSaveHTML(t *testing.T) {
	dir := t.TempDir()
	path, err := SaveHTML(dir, "Report", DefaultContent)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<title>Report</title>")
	assert.Contains(t, string(data), "Welcome to Markdown Editor")
}
