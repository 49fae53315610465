package chunker

import (
	"strings"
	"unicode"

	"github.com/dshills/doccontext-mcp/pkg/types"
)

// Chunker splits text that exceeds a character budget into ordered chunks
// aligned to line boundaries.
type Chunker struct{}

// New creates a new Chunker instance
func New() *Chunker {
	return &Chunker{}
}

// Chunk splits text into chunks of at most maxChars characters.
//
// If the text fits the budget, a single chunk covering the whole input is
// returned. Otherwise lines accumulate into a running buffer that is flushed
// whenever appending the next line (with its restored newline) would exceed
// maxChars. Boundaries always fall on line breaks, never mid-line; a single
// line longer than maxChars becomes its own oversized chunk.
//
// Chunk offsets track cumulative character position including newlines, so
// consecutive chunks tile the input. Content has trailing whitespace trimmed;
// the offsets still describe the untrimmed span.
func (c *Chunker) Chunk(text string, maxChars int) []types.Chunk {
	if maxChars < 1 {
		maxChars = 1
	}

	if len(text) <= maxChars {
		chunk := types.Chunk{Content: text, CharStart: 0, CharEnd: len(text)}
		chunk.ComputeTokenCount()
		return []types.Chunk{chunk}
	}

	lines := strings.Split(text, "\n")
	chunks := make([]types.Chunk, 0)

	var buf strings.Builder
	bufStart := 0
	offset := 0

	for i, line := range lines {
		lineLen := len(line)
		if i < len(lines)-1 {
			lineLen++ // restored newline
		}

		if buf.Len() > 0 && buf.Len()+lineLen > maxChars {
			chunks = append(chunks, newChunk(buf.String(), bufStart, offset))
			buf.Reset()
			bufStart = offset
		}

		buf.WriteString(line)
		if i < len(lines)-1 {
			buf.WriteByte('\n')
		}
		offset += lineLen
	}

	if buf.Len() > 0 {
		chunks = append(chunks, newChunk(buf.String(), bufStart, offset))
	}

	return chunks
}

// newChunk builds a chunk for the span [start, end), trimming trailing
// whitespace from the content only.
func newChunk(content string, start, end int) types.Chunk {
	chunk := types.Chunk{
		Content:   strings.TrimRightFunc(content, unicode.IsSpace),
		CharStart: start,
		CharEnd:   end,
	}
	chunk.ComputeTokenCount()
	return chunk
}
