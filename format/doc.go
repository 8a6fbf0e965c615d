// Package format implements the markdown formatting-state engine.
//
// Given a document and a selection it reports which block and inline
// constructs are active at the selection start (Resolve), and it builds the
// edit that a formatting command produces (Apply, EditFor).
//
// All offsets are 0-based and counted in runes. Every function is pure: text
// is never mutated in place and nothing is retained between calls.
//
// Detection is deliberately line-local and heuristic. Delimiter pairs are
// matched by a left-to-right toggle scan, escaped delimiters (`\*`) are not
// excluded, and when both `**` and `*` enclose the caret only bold is
// reported.
package format
