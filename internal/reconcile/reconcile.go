package reconcile

import (
	"regexp"
	"strings"

	"github.com/dshills/doccontext-mcp/pkg/types"
)

// ViewMode describes how the view that produced a selection rendered the
// document.
type ViewMode string

const (
	// ViewSource is the windowed source view, which decorates every visible
	// line with a leading line number.
	ViewSource ViewMode = "source"

	// ViewMarkdown is the rendered markdown view, which adds no decoration.
	ViewMarkdown ViewMode = "markdown"
)

// lineNumberPrefix matches the synthetic line-number decoration the windowed
// source view injects at the start of each line.
var lineNumberPrefix = regexp.MustCompile(`^\d+\s+`)

// Strategy attempts to locate a cleaned selection in a document. It returns
// the located offsets and whether it succeeded.
type Strategy func(doc, cleaned string) (types.Range, bool)

// Reconciler maps a user-visible selection back to exact character offsets in
// the canonical document.
//
// Strategies are tried in order until one succeeds; each is strictly less
// exact than the previous and only runs when the stronger one fails. The
// pipeline trades offset precision for robustness against renderer
// whitespace normalization.
type Reconciler struct {
	strategies []Strategy
}

// New creates a Reconciler with the standard strategy pipeline: exact
// substring match, line-anchored fallback, word-anchored fallback.
func New() *Reconciler {
	return &Reconciler{
		strategies: []Strategy{exactMatch, lineAnchored, wordAnchored},
	}
}

// Resolve returns the offsets of the selection in doc. A collapsed selection,
// or one empty after cleaning and trimming, yields no result; the caller
// treats that as "no selection" and falls back to full-document targeting.
func (r *Reconciler) Resolve(doc, selection string, mode ViewMode) (types.Range, bool) {
	cleaned := Clean(selection, mode)
	if strings.TrimSpace(cleaned) == "" {
		return types.Range{}, false
	}

	for _, strategy := range r.strategies {
		if rng, ok := strategy(doc, cleaned); ok {
			return rng, true
		}
	}

	return types.Range{}, false
}

// Clean strips per-line view decoration from a selection. Only the windowed
// source view decorates lines; markdown-rendered selections pass through
// unchanged.
func Clean(selection string, mode ViewMode) string {
	if mode != ViewSource {
		return selection
	}

	lines := strings.Split(selection, "\n")
	for i, line := range lines {
		lines[i] = lineNumberPrefix.ReplaceAllString(line, "")
	}
	return strings.Join(lines, "\n")
}

// exactMatch locates the cleaned selection verbatim via substring search.
func exactMatch(doc, cleaned string) (types.Range, bool) {
	idx := strings.Index(doc, cleaned)
	if idx < 0 {
		return types.Range{}, false
	}
	return types.Range{Start: idx, End: idx + len(cleaned)}, true
}

// lineAnchored locates the selection by its first non-blank line's trimmed
// text. If the selection spans multiple lines, the last line's trimmed text
// is located separately (searching from the start position onward) to fix
// the end; otherwise the end is the first line's extent.
func lineAnchored(doc, cleaned string) (types.Range, bool) {
	lines := nonBlankTrimmedLines(cleaned)
	if len(lines) == 0 {
		return types.Range{}, false
	}

	first := lines[0]
	start := strings.Index(doc, first)
	if start < 0 {
		return types.Range{}, false
	}

	if len(lines) > 1 {
		last := lines[len(lines)-1]
		if rel := strings.Index(doc[start:], last); rel >= 0 {
			return types.Range{Start: start, End: start + rel + len(last)}, true
		}
	}

	return types.Range{Start: start, End: start + len(first)}, true
}

// wordAnchored locates the selection by the first sufficiently long word of
// its first line, approximating the end from the cleaned selection's length.
func wordAnchored(doc, cleaned string) (types.Range, bool) {
	lines := nonBlankTrimmedLines(cleaned)
	if len(lines) == 0 {
		return types.Range{}, false
	}

	word := firstLongWord(lines[0])
	if word == "" {
		return types.Range{}, false
	}

	start := strings.Index(doc, word)
	if start < 0 {
		return types.Range{}, false
	}

	end := start + len(cleaned)
	if end > len(doc) {
		end = len(doc)
	}
	return types.Range{Start: start, End: end}, true
}

// nonBlankTrimmedLines splits a selection into its non-blank lines, trimmed
// of surrounding whitespace.
func nonBlankTrimmedLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// firstLongWord returns the first whitespace-delimited word longer than two
// characters, or "" when there is none.
func firstLongWord(line string) string {
	for _, word := range strings.Fields(line) {
		if len(word) > 2 {
			return word
		}
	}
	return ""
}
