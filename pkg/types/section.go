package types

// Hierarchy levels assigned to sections by the structural parser.
const (
	// LevelPreamble is the synthetic level for content preceding the first
	// heading marker.
	LevelPreamble = -1

	// LevelUnknown is the sentinel level for heading commands that are not
	// in the known command table. It sorts below every named level.
	LevelUnknown = 99
)

// Section represents a structurally delimited span of a document, headed by a
// heading command marker or by the implicit preamble.
//
// Sections are produced in document order. The CharEnd of section i equals the
// CharStart of section i+1 (document length for the last section), so the
// sections of a document partition [0, len(document)) with no gaps or
// overlaps.
type Section struct {
	// Title is the text between the braces of the heading marker, or
	// "Preamble" for the synthetic preamble section.
	Title string

	// Command is the heading command name without the leading backslash
	// (e.g. "section", "subsection"). Empty for the preamble.
	Command string

	// Level is the hierarchy level: 0 for title through 6 for subparagraph,
	// LevelUnknown for unrecognized commands, LevelPreamble for the preamble.
	Level int

	// Character offsets into the document (0-based, CharEnd exclusive).
	CharStart int
	CharEnd   int

	// Line numbers covered by the section (1-based, inclusive).
	LineStart int
	LineEnd   int

	// Content is the verbatim document text of the section's span,
	// including the heading marker line and trailing newlines.
	Content string
}

// IsPreamble reports whether the section is the synthetic preamble.
func (s *Section) IsPreamble() bool {
	return s.Level == LevelPreamble
}

// Validate checks structural consistency of the section.
func (s *Section) Validate() error {
	if s.CharStart < 0 || s.CharEnd < s.CharStart {
		return ErrInvalidSpan
	}

	if s.LineStart <= 0 || s.LineEnd < s.LineStart {
		return ErrInvalidLineRange
	}

	return nil
}
