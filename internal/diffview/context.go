package diffview

import "github.com/dshills/doccontext-mcp/pkg/types"

// EllipsisMarker is the content of the synthetic unchanged separator line
// emitted between non-adjacent context windows. It carries no line numbers;
// consumers render it as an ellipsis.
const EllipsisMarker = "..."

// window is an inclusive index range over a full diff.
type window struct {
	start, end int
}

// ContextualDiff compresses a diff to its changed lines plus contextLines of
// surrounding context on each side.
//
// Every changed line contributes a window clipped to the diff bounds;
// overlapping or adjacent windows are merged in a single left-to-right sweep.
// Gaps between merged windows appear as one EllipsisMarker line. A diff with
// no changed lines is returned in full, uncompressed.
func (e *Engine) ContextualDiff(original, modified string, contextLines int) []types.DiffLine {
	full := e.Diff(original, modified)

	changed := make([]int, 0)
	for i := range full {
		if full[i].IsChange() {
			changed = append(changed, i)
		}
	}
	if len(changed) == 0 {
		return full
	}

	if contextLines < 0 {
		contextLines = 0
	}

	windows := make([]window, 0, len(changed))
	for _, idx := range changed {
		w := window{start: idx - contextLines, end: idx + contextLines}
		if w.start < 0 {
			w.start = 0
		}
		if w.end > len(full)-1 {
			w.end = len(full) - 1
		}
		windows = append(windows, w)
	}

	merged := mergeWindows(windows)

	result := make([]types.DiffLine, 0)
	for i, w := range merged {
		if i > 0 {
			result = append(result, types.DiffLine{
				Content: EllipsisMarker,
				Kind:    types.LineUnchanged,
			})
		}
		result = append(result, full[w.start:w.end+1]...)
	}

	return result
}

// mergeWindows merges overlapping or adjacent windows. Input windows are
// already sorted by start because changed-line indices ascend.
func mergeWindows(windows []window) []window {
	merged := []window{windows[0]}
	for _, w := range windows[1:] {
		last := &merged[len(merged)-1]
		if w.start <= last.end+1 {
			if w.end > last.end {
				last.end = w.end
			}
			continue
		}
		merged = append(merged, w)
	}
	return merged
}
