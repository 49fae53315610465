package types

// Range is a pair of character offsets into a document (0-based, End
// exclusive).
type Range struct {
	Start int
	End   int
}

// Len returns the number of characters covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Selection is a transient user text selection reconciled against a document
// snapshot. It is created on every selection event and discarded on the next
// selection change or on edit acceptance.
type Selection struct {
	// Offsets into the canonical document.
	Start int
	End   int

	// Text is the selected document text at the time the selection was made.
	Text string
}

// ValidAgainst reports whether the selection's offsets still address its
// original text in doc. A selection taken against an older document snapshot
// must not be spliced into a newer one without this check passing.
func (s *Selection) ValidAgainst(doc string) bool {
	if s.Start < 0 || s.End < s.Start || s.End > len(doc) {
		return false
	}
	return doc[s.Start:s.End] == s.Text
}
