package format

import (
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownTag is returned by ParseTag for names outside the tag set.
var ErrUnknownTag = errors.New("format: unknown tag")

// Tag identifies a markdown construct that can be active at a position.
type Tag uint8

const (
	H1 Tag = iota
	H2
	H3
	H4
	Bold
	Italic
	Strikethrough
	InlineCode
	Quote
	List
	OrderedList
	Checklist

	tagCount
)

var tagNames = [tagCount]string{
	H1:            "h1",
	H2:            "h2",
	H3:            "h3",
	H4:            "h4",
	Bold:          "bold",
	Italic:        "italic",
	Strikethrough: "strikethrough",
	InlineCode:    "inline-code",
	Quote:         "quote",
	List:          "list",
	OrderedList:   "ordered-list",
	Checklist:     "checklist",
}

func (t Tag) String() string {
	if t >= tagCount {
		return "unknown"
	}
	return tagNames[t]
}

// IsBlock reports whether t is decided by the line prefix rather than by
// inline delimiters.
func (t Tag) IsBlock() bool {
	switch t {
	case Bold, Italic, Strikethrough, InlineCode:
		return false
	default:
		return t < tagCount
	}
}

// ParseTag maps a tag name (case-insensitive) to its Tag.
func ParseTag(name string) (Tag, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range tagNames {
		if n == name {
			return Tag(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownTag, "%q", name)
}

// Set is an unordered set of tags.
type Set uint16

func NewSet(tags ...Tag) Set {
	var s Set
	for _, t := range tags {
		s = s.With(t)
	}
	return s
}

func (s Set) Has(t Tag) bool {
	if t >= tagCount {
		return false
	}
	return s&(1<<t) != 0
}

func (s Set) With(t Tag) Set {
	if t >= tagCount {
		return s
	}
	return s | 1<<t
}

func (s Set) Without(t Tag) Set {
	if t >= tagCount {
		return s
	}
	return s &^ (1 << t)
}

func (s Set) Len() int { return bits.OnesCount16(uint16(s)) }

func (s Set) IsEmpty() bool { return s == 0 }

// Tags returns the members of s in declaration order.
func (s Set) Tags() []Tag {
	if s == 0 {
		return nil
	}
	out := make([]Tag, 0, s.Len())
	for t := Tag(0); t < tagCount; t++ {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s Set) String() string {
	tags := s.Tags()
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.String()
	}
	return strings.Join(names, ",")
}
