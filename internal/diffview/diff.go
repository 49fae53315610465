package diffview

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dshills/doccontext-mcp/pkg/types"
)

// Engine computes line-level diffs between two text versions for review
// display.
type Engine struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// New creates a new Engine instance
func New() *Engine {
	return &Engine{dmp: diffmatchpatch.New()}
}

// Diff computes a line-oriented edit script between original and modified.
//
// The underlying line-diff primitive produces change blocks; each block is
// split into individual lines tagged added, removed, or unchanged.
// Independent old/new line counters advance only on the sides where a line
// exists; unchanged lines advance both. Diff never fails for any two string
// inputs: one empty input yields an all-added or all-removed sequence.
func (e *Engine) Diff(original, modified string) []types.DiffLine {
	if original == modified {
		return e.unchangedLines(original)
	}

	c1, c2, lineArr := e.dmp.DiffLinesToChars(original, modified)
	diffs := e.dmp.DiffMain(c1, c2, false)
	diffs = e.dmp.DiffCharsToLines(diffs, lineArr)

	result := make([]types.DiffLine, 0)
	oldLine, newLine := 1, 1

	for _, d := range diffs {
		for _, line := range splitBlock(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				result = append(result, types.DiffLine{
					Content: line,
					Kind:    types.LineRemoved,
					OldLine: oldLine,
				})
				oldLine++
			case diffmatchpatch.DiffInsert:
				result = append(result, types.DiffLine{
					Content: line,
					Kind:    types.LineAdded,
					NewLine: newLine,
				})
				newLine++
			default:
				result = append(result, types.DiffLine{
					Content: line,
					Kind:    types.LineUnchanged,
					OldLine: oldLine,
					NewLine: newLine,
				})
				oldLine++
				newLine++
			}
		}
	}

	return result
}

// unchangedLines renders identical inputs as an all-unchanged sequence with
// matching line numbers.
func (e *Engine) unchangedLines(text string) []types.DiffLine {
	if text == "" {
		return []types.DiffLine{}
	}

	lines := splitBlock(text)
	result := make([]types.DiffLine, len(lines))
	for i, line := range lines {
		result[i] = types.DiffLine{
			Content: line,
			Kind:    types.LineUnchanged,
			OldLine: i + 1,
			NewLine: i + 1,
		}
	}
	return result
}

// splitBlock splits a change block into lines. A block that ends in a newline
// yields a trailing empty string when split; that phantom blank line is
// dropped.
func splitBlock(block string) []string {
	lines := strings.Split(block, "\n")
	if strings.HasSuffix(block, "\n") {
		lines = lines[:len(lines)-1]
	}
	return lines
}
