package parser

import (
	"sort"

	"github.com/dshills/doccontext-mcp/pkg/types"
)

// Extraction is the result of extracting the minimal contiguous span covering
// a set of sections.
type Extraction struct {
	// Text is the document substring between CharStart and CharEnd.
	Text string

	// Character offsets of the span (0-based, CharEnd exclusive).
	CharStart int
	CharEnd   int

	// Sections lists every section whose span intersects the extracted
	// range, including sections between non-adjacent selected indices.
	Sections []types.Section
}

// Extract computes the minimal contiguous character range covering the
// sections at the given indices and returns the document substring for it.
//
// If the index list is empty, or any index is out of bounds, the entire
// document is returned unchanged. This fails open rather than closed so that
// ambiguous or invalid targeting never silently drops content.
//
// Non-adjacent selected sections still produce one contiguous span: the
// result also includes any sections lying between them.
func Extract(doc string, sections []types.Section, indices []int) Extraction {
	if len(indices) == 0 {
		return wholeDocument(doc, sections)
	}
	for _, idx := range indices {
		if idx < 0 || idx >= len(sections) {
			return wholeDocument(doc, sections)
		}
	}

	sorted := append([]int(nil), indices...)
	sort.Ints(sorted)

	start := sections[sorted[0]].CharStart
	end := sections[sorted[0]].CharEnd
	for _, idx := range sorted[1:] {
		if sections[idx].CharStart < start {
			start = sections[idx].CharStart
		}
		if sections[idx].CharEnd > end {
			end = sections[idx].CharEnd
		}
	}

	covered := make([]types.Section, 0)
	for _, sec := range sections {
		if sec.CharStart < end && sec.CharEnd > start {
			covered = append(covered, sec)
		}
	}

	return Extraction{
		Text:      doc[start:end],
		CharStart: start,
		CharEnd:   end,
		Sections:  covered,
	}
}

// wholeDocument is the fail-open result covering the full document.
func wholeDocument(doc string, sections []types.Section) Extraction {
	return Extraction{
		Text:      doc,
		CharStart: 0,
		CharEnd:   len(doc),
		Sections:  sections,
	}
}
