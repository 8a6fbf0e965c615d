package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/mdflourish/format"
)

type result struct {
	stdout, stderr string
	err            error
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func writeFile(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		text string
		args []string
		want string
	}{
		{"bold", "**bold** text", []string{"-o", "3"}, "bold\n"},
		{"plain", "**bold** text", []string{"-o", "11"}, "none\n"},
		{"heading and italic", "## A *b* c", []string{"-o", "6"}, "h2,italic\n"},
		{"selection start wins", "**a** b", []string{"-o", "2", "-e", "7"}, "bold\n"},
		{"out of range", "plain", []string{"-o", "999"}, "none\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := run(t, tt.text, append([]string{"status", "-"}, tt.args...)...)
			require.NoError(t, r.err)
			assert.Equal(t, tt.want, r.stdout)
		})
	}
}

func TestStatusFile(t *testing.T) {
	path := writeFile(t, "doc.md", "- [ ] task")
	r := run(t, "", "status", path, "-o", "8")
	require.NoError(t, r.err)
	assert.Equal(t, "checklist\n", r.stdout)
}

func TestApply(t *testing.T) {
	r := run(t, "hello world", "apply", "bold", "-", "-o", "0", "-e", "5")
	require.NoError(t, r.err)
	assert.Equal(t, "**hello** world", r.stdout)
	assert.Equal(t, "selection 9 9\n", r.stderr)
}

func TestApplyPlaceholder(t *testing.T) {
	r := run(t, "", "apply", "h2", "-")
	require.NoError(t, r.err)
	assert.Equal(t, "## Heading 2", r.stdout)
	assert.Equal(t, "selection 3 12\n", r.stderr)
}

func TestApplyEmoji(t *testing.T) {
	r := run(t, "ab", "apply", "emoji", "-", "-o", "1", "--emoji", "party popper")
	require.NoError(t, r.err)
	assert.Equal(t, "a🎉b", r.stdout)
	assert.Equal(t, "selection 2 2\n", r.stderr)

	r = run(t, "ab", "apply", "emoji", "-")
	assert.Error(t, r.err)
}

func TestApplyWrite(t *testing.T) {
	path := writeFile(t, "doc.md", "item")
	r := run(t, "", "apply", "list", path, "-o", "0", "-e", "4", "-w")
	require.NoError(t, r.err)
	assert.Empty(t, r.stdout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "- item", string(data))
}

func TestApplyWriteKeepsBytes(t *testing.T) {
	path := writeFile(t, "doc.md", "one\r\nitem\r\ne\u0301")
	r := run(t, "", "apply", "list", path, "-o", "5", "-e", "9", "-w")
	require.NoError(t, r.err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\r\n- item\r\ne\u0301", string(data))
	assert.Equal(t, "selection 11 11\n", r.stderr)
}

func TestStatusCountsStoredRunes(t *testing.T) {
	// Each "e" plus combining accent is two runes, so "b" sits at 9.
	r := run(t, "e\u0301e\u0301e\u0301 **b**", "status", "-", "-o", "9")
	require.NoError(t, r.err)
	assert.Equal(t, "bold\n", r.stdout)
}

func TestApplyUnknownCommand(t *testing.T) {
	r := run(t, "x", "apply", "blink", "-")
	require.Error(t, r.err)
	assert.ErrorIs(t, r.err, format.ErrUnknownCommand)
	assert.Contains(t, r.err.Error(), "inline-code")
}

func TestExport(t *testing.T) {
	path := writeFile(t, "Weekly Notes.md", "# Notes\n\n```go\nx := 1\n```\n")
	dir := t.TempDir()

	r := run(t, "", "export", path, "--dir", dir)
	require.NoError(t, r.err)
	want := filepath.Join(dir, "weekly_notes.html")
	assert.Equal(t, want+"\n", r.stdout)

	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<title>Weekly Notes</title>")
	assert.Contains(t, string(data), `<h1 id="notes">Notes</h1>`)
}

func TestExportStdout(t *testing.T) {
	r := run(t, "*hi*", "export", "-", "-O", "-", "--title", "T")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "<title>T</title>")
	assert.Contains(t, r.stdout, "<em>hi</em>")
}

func TestThemes(t *testing.T) {
	r := run(t, "", "themes")
	require.NoError(t, r.err)
	lines := strings.Split(strings.TrimSpace(r.stdout), "\n")
	assert.Len(t, lines, 60)
	assert.True(t, strings.HasPrefix(lines[0], "* dark"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  light"), lines[1])
}

func TestEmoji(t *testing.T) {
	r := run(t, "", "emoji", "tada")
	require.NoError(t, r.err)
	assert.Equal(t, "🎉  party popper\n", r.stdout)

	r = run(t, "", "emoji")
	require.NoError(t, r.err)
	assert.True(t, strings.HasPrefix(r.stdout, "Smileys & Emotion ("), r.stdout)

	r = run(t, "", "emoji", "zzzzqqq")
	assert.Error(t, r.err)
}

func TestUnknownTheme(t *testing.T) {
	_, err := resolveTheme("no-such-theme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mdflourish themes")
}

func TestVersionFlag(t *testing.T) {
	r := run(t, "", "--version")
	require.NoError(t, r.err)
	assert.True(t, strings.HasPrefix(r.stdout, "mdflourish "), r.stdout)
}
