// Package parser splits semi-structured document text into ordered sections
// for targeting and extraction.
//
// A document mixes Markdown body text with LaTeX-style heading markers of the
// form \name{title} or \name*{title}. The parser classifies each line as
// either a heading marker or body text, then folds the classified lines into
// sections with an explicit open-section accumulator.
//
// # Basic Usage
//
//	p := parser.New()
//	sections := p.Parse(document)
//
//	for _, sec := range sections {
//	    fmt.Printf("%s [%d-%d)\n", sec.Title, sec.CharStart, sec.CharEnd)
//	}
//
// # Hierarchy
//
// Known commands map to fixed hierarchy levels (title=0, chapter=1,
// section=2, subsection=3, subsubsection=4, paragraph=5, subparagraph=6).
// Unknown commands receive types.LevelUnknown. Lines before the first marker
// become a synthetic "Preamble" section at types.LevelPreamble.
//
// # Guarantees
//
// Parse is total over any string input and never fails. The returned
// sections partition [0, len(document)) in document order with no gaps or
// overlaps; each section's Content is the verbatim document text of its span.
//
// # Extraction
//
// Extract computes the minimal contiguous span covering a set of section
// indices. Invalid or empty index sets fail open to the entire document so
// that downstream callers always receive usable text.
package parser
