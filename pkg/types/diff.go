package types

// LineKind classifies a single line of a diff.
type LineKind string

const (
	LineAdded     LineKind = "added"
	LineRemoved   LineKind = "removed"
	LineUnchanged LineKind = "unchanged"
)

// DiffLine represents one line of a line-level diff between two text
// versions.
//
// Line numbers are 1-based and populated only on the side(s) where the line
// exists: removed lines carry only OldLine, added lines only NewLine,
// unchanged lines both. A zero value means the line does not exist on that
// side.
type DiffLine struct {
	Content string
	Kind    LineKind

	OldLine int
	NewLine int
}

// IsChange reports whether the line is an addition or removal.
func (d *DiffLine) IsChange() bool {
	return d.Kind == LineAdded || d.Kind == LineRemoved
}

// Validate checks that the line numbers are consistent with the kind.
func (d *DiffLine) Validate() error {
	switch d.Kind {
	case LineAdded:
		if d.NewLine < 1 || d.OldLine != 0 {
			return ErrInvalidLineNumbers
		}
	case LineRemoved:
		if d.OldLine < 1 || d.NewLine != 0 {
			return ErrInvalidLineNumbers
		}
	case LineUnchanged:
		// Ellipsis separator lines are unchanged lines with no numbers.
		if (d.OldLine == 0) != (d.NewLine == 0) {
			return ErrInvalidLineNumbers
		}
	default:
		return ErrInvalidLineKind
	}

	return nil
}
