package document

import (
	"bytes"
	"html/template"
	"io"
	"path/filepath"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// codeStyle matches the dark page template.
const codeStyle = "github-dark"

// md is the configured goldmark instance, reused across calls.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM, // tables, strikethrough, autolinks, task lists
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		renderer.WithNodeRenderers(util.Prioritized(newCodeRenderer(codeStyle), 100)),
	),
)

// RenderHTML converts markdown to an HTML fragment. Fenced code blocks are
// highlighted with inline styles.
func RenderHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", errors.Wrap(err, "convert markdown")
	}
	return buf.String(), nil
}

// ExportHTML writes a standalone HTML page for source to w.
func ExportHTML(w io.Writer, title, source string) error {
	body, err := RenderHTML(source)
	if err != nil {
		return err
	}
	if title == "" {
		title = UntitledName
	}
	err = pageTemplate.Execute(w, struct {
		Title string
		Body  template.HTML
	}{
		Title: title,
		Body:  template.HTML(body), //nolint:gosec // rendered from the user's own document
	})
	return errors.Wrap(err, "render page")
}

// SaveHTML exports source to <dir>/<FileName(name)>.html and returns the path.
func SaveHTML(dir, name, source string) (string, error) {
	var buf bytes.Buffer
	if err := ExportHTML(&buf, name, source); err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(name)+".html")
	if err := writeFile(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}

// codeRenderer renders fenced code blocks through chroma.
type codeRenderer struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

func newCodeRenderer(style string) *codeRenderer {
	st := styles.Get(style)
	if st == nil {
		st = styles.Fallback
	}
	return &codeRenderer{
		style:     st,
		formatter: chromahtml.New(chromahtml.WithClasses(false), chromahtml.TabWidth(4)),
	}
}

func (r *codeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCode)
}

func (r *codeRenderer) renderFencedCode(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)

	var code bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		code.Write(seg.Value(source))
	}

	lexer := lexers.Get(string(n.Language(source)))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, code.String())
	if err != nil {
		return ast.WalkStop, errors.Wrap(err, "tokenise code block")
	}
	if err := r.formatter.Format(w, r.style, it); err != nil {
		return ast.WalkStop, errors.Wrap(err, "format code block")
	}
	return ast.WalkSkipChildren, nil
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6;
            max-width: 800px;
            margin: 0 auto;
            padding: 2rem;
            background-color: #0d1117;
            color: #c9d1d9;
        }
        img { max-width: 100%; border-radius: 8px; }
        pre { padding: 1rem; border-radius: 6px; overflow-x: auto; }
        code { font-family: 'SFMono-Regular', Consolas, 'Liberation Mono', Menlo, monospace; }
        blockquote { border-left: 4px solid #30363d; padding-left: 1rem; color: #8b949e; }
        table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
        th, td { border: 1px solid #30363d; padding: 0.5rem; }
        th { background-color: #161b22; }
        a { color: #58a6ff; text-decoration: none; }
        a:hover { text-decoration: underline; }
        h1, h2, h3, h4, h5, h6 { margin-top: 1.5rem; margin-bottom: 1rem; color: #e6edf3; }
        hr { border: 0; border-top: 1px solid #30363d; margin: 2rem 0; }
    </style>
</head>
<body>
{{.Body}}
</body>
</html>
`))
