// Package diffview renders the difference between two text versions as a
// reviewable sequence of tagged lines.
//
// The edit script itself is delegated to the diffmatchpatch line-diff
// primitive; this package splits its change blocks into individual lines,
// assigns 1-based old/new line numbers, and offers contextual compression
// for display.
//
// # Basic Usage
//
//	engine := diffview.New()
//	lines := engine.Diff(original, modified)
//
//	compressed := engine.ContextualDiff(original, modified, 2)
//
// A contextual diff keeps only changed lines plus a fixed window of
// surrounding unchanged lines, collapsing gaps to a synthetic "..." line
// with no line numbers.
//
// Both operations are total: any two string inputs, including empty ones,
// produce a well-formed line sequence.
package diffview
