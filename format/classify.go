package format

import "strings"

type prefixRule struct {
	prefix string
	tag    Tag
}

// Longer heading prefixes come first: "#### " also starts with "#".
var headingRules = []prefixRule{
	{prefix: "#### ", tag: H4},
	{prefix: "### ", tag: H3},
	{prefix: "## ", tag: H2},
	{prefix: "# ", tag: H1},
}

// Checklist prefixes start with a list prefix, so they are tested first.
var blockRules = []prefixRule{
	{prefix: "- [ ] ", tag: Checklist},
	{prefix: "- [x] ", tag: Checklist},
	{prefix: "- [X] ", tag: Checklist},
	{prefix: "- ", tag: List},
	{prefix: "* ", tag: List},
	{prefix: "+ ", tag: List},
	{prefix: "> ", tag: Quote},
}

// ClassifyBlock returns the block-level tag decided by the prefix of line.
func ClassifyBlock(line string) (Tag, bool) {
	for _, r := range headingRules {
		if strings.HasPrefix(line, r.prefix) {
			return r.tag, true
		}
	}
	for _, r := range blockRules {
		if strings.HasPrefix(line, r.prefix) {
			return r.tag, true
		}
	}
	if isOrderedItem(line) {
		return OrderedList, true
	}
	return 0, false
}

// isOrderedItem matches "<digits>. ".
func isOrderedItem(line string) bool {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	return i > 0 && strings.HasPrefix(line[i:], ". ")
}
