package format

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownCommand is returned by ParseCommand for unrecognised names.
var ErrUnknownCommand = errors.New("format: unknown command")

// Command is a formatting request invoked by the user.
type Command uint8

const (
	CmdBold Command = iota
	CmdItalic
	CmdStrikethrough
	CmdH1
	CmdH2
	CmdH3
	CmdH4
	CmdList
	CmdOrderedList
	CmdChecklist
	CmdLink
	CmdImage
	CmdQuote
	CmdRule
	CmdTable
	CmdCodeBlock
	CmdInlineCode
	CmdMath
	CmdEmoji

	commandCount
)

type commandKind uint8

const (
	kindWrap commandKind = iota
	kindLinePrefix
	kindInsert
	kindRequest
)

type template struct {
	name        string
	kind        commandKind
	open        string
	close       string
	placeholder string
	tag         Tag
	hasTag      bool
}

const tableTemplate = "| Header 1 | Header 2 |\n| :--- | :--- |\n| Cell 1 | Cell 2 |"

var templates = [commandCount]template{
	CmdBold:          {name: "bold", kind: kindWrap, open: "**", close: "**", placeholder: "Bold", tag: Bold, hasTag: true},
	CmdItalic:        {name: "italic", kind: kindWrap, open: "*", close: "*", placeholder: "Italic", tag: Italic, hasTag: true},
	CmdStrikethrough: {name: "strikethrough", kind: kindWrap, open: "~~", close: "~~", placeholder: "Strikethrough", tag: Strikethrough, hasTag: true},
	CmdH1:            {name: "h1", kind: kindLinePrefix, open: "# ", placeholder: "Heading 1", tag: H1, hasTag: true},
	CmdH2:            {name: "h2", kind: kindLinePrefix, open: "## ", placeholder: "Heading 2", tag: H2, hasTag: true},
	CmdH3:            {name: "h3", kind: kindLinePrefix, open: "### ", placeholder: "Heading 3", tag: H3, hasTag: true},
	CmdH4:            {name: "h4", kind: kindLinePrefix, open: "#### ", placeholder: "Heading 4", tag: H4, hasTag: true},
	CmdList:          {name: "list", kind: kindLinePrefix, open: "- ", placeholder: "List item", tag: List, hasTag: true},
	CmdOrderedList:   {name: "ordered-list", kind: kindLinePrefix, open: "1. ", placeholder: "List item", tag: OrderedList, hasTag: true},
	CmdChecklist:     {name: "checklist", kind: kindLinePrefix, open: "- [ ] ", placeholder: "Task", tag: Checklist, hasTag: true},
	CmdLink:          {name: "link", kind: kindWrap, open: "[", close: "](url)", placeholder: "Link text"},
	CmdImage:         {name: "image", kind: kindWrap, open: "![", close: "](url)", placeholder: "Alt text"},
	CmdQuote:         {name: "quote", kind: kindLinePrefix, open: "> ", placeholder: "Quote", tag: Quote, hasTag: true},
	CmdRule:          {name: "hr", kind: kindInsert, open: "\n---\n"},
	CmdTable:         {name: "table", kind: kindInsert, open: tableTemplate},
	CmdCodeBlock:     {name: "code", kind: kindWrap, open: "```\n", close: "\n```", placeholder: "Code"},
	CmdInlineCode:    {name: "inline-code", kind: kindWrap, open: "`", close: "`", placeholder: "code", tag: InlineCode, hasTag: true},
	CmdMath:          {name: "math", kind: kindWrap, open: "$", close: "$", placeholder: "E=mc^2"},
	CmdEmoji:         {name: "emoji", kind: kindRequest},
}

// Commands returns every command in toolbar order.
func Commands() []Command {
	out := make([]Command, 0, commandCount)
	for c := Command(0); c < commandCount; c++ {
		out = append(out, c)
	}
	return out
}

func (c Command) String() string {
	if c >= commandCount {
		return "unknown"
	}
	return templates[c].name
}

// ParseCommand maps a command name (case-insensitive) to its Command.
// "emoji-request" is accepted as an alias of "emoji".
func ParseCommand(name string) (Command, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "emoji-request" {
		return CmdEmoji, nil
	}
	for i, t := range templates {
		if t.name == name {
			return Command(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownCommand, "%q", name)
}

// Tag returns the tag that Resolve reports for text produced by c, if any.
func (c Command) Tag() (Tag, bool) {
	if c >= commandCount {
		return 0, false
	}
	t := templates[c]
	return t.tag, t.hasTag
}

// IsBlock reports whether c inserts a line prefix.
func (c Command) IsBlock() bool {
	return c < commandCount && templates[c].kind == kindLinePrefix
}

// IsRequest reports whether c asks the host for input instead of editing.
func (c Command) IsRequest() bool {
	return c < commandCount && templates[c].kind == kindRequest
}

// Placeholder returns the text c inserts when the selection is empty.
func (c Command) Placeholder() string {
	if c >= commandCount {
		return ""
	}
	return templates[c].placeholder
}
