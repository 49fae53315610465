package parser

import (
	"strings"

	"github.com/dshills/doccontext-mcp/pkg/types"
)

// commandLevels maps known heading command names to hierarchy levels.
var commandLevels = map[string]int{
	"title":         0,
	"chapter":       1,
	"section":       2,
	"subsection":    3,
	"subsubsection": 4,
	"paragraph":     5,
	"subparagraph":  6,
}

// PreambleTitle is the title assigned to the synthetic section covering
// content that precedes the first heading marker.
const PreambleTitle = "Preamble"

// Parser splits raw document text into ordered sections by detecting
// heading command markers.
type Parser struct{}

// New creates a new Parser instance
func New() *Parser {
	return &Parser{}
}

// Parse scans the document line by line and returns its sections in document
// order. It is total over any string input: a document with no markers yields
// a single preamble section spanning the whole text, and empty input yields
// zero sections.
func (p *Parser) Parse(doc string) []types.Section {
	if doc == "" {
		return nil
	}

	lines := strings.Split(doc, "\n")
	sections := make([]types.Section, 0)

	// The currently open section accumulates lines until the next heading
	// marker or document end.
	var open *types.Section

	offset := 0
	for i, line := range lines {
		if h, ok := classifyLine(line); ok {
			if open != nil {
				open.CharEnd = offset
				open.LineEnd = i
				open.Content = doc[open.CharStart:offset]
				sections = append(sections, *open)
			}
			open = &types.Section{
				Title:     h.title,
				Command:   h.name,
				Level:     levelFor(h.name),
				CharStart: offset,
				LineStart: i + 1,
			}
		} else if open == nil {
			open = &types.Section{
				Title:     PreambleTitle,
				Level:     types.LevelPreamble,
				CharStart: offset,
				LineStart: i + 1,
			}
		}

		offset += len(line)
		if i < len(lines)-1 {
			offset++ // restored newline
		}
	}

	if open != nil {
		open.CharEnd = len(doc)
		open.LineEnd = len(lines)
		open.Content = doc[open.CharStart:]
		sections = append(sections, *open)
	}

	return sections
}

// levelFor returns the hierarchy level for a heading command name.
func levelFor(name string) int {
	if level, ok := commandLevels[name]; ok {
		return level
	}
	return types.LevelUnknown
}
