package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const extractDoc = "intro\n\\section{A}\naaa\n\\section{B}\nbbb\n\\section{C}\nccc"

func TestExtract_SingleSection(t *testing.T) {
	p := New()
	sections := p.Parse(extractDoc)
	require.Len(t, sections, 4)

	res := Extract(extractDoc, sections, []int{1})

	assert.Equal(t, "\\section{A}\naaa\n", res.Text)
	assert.Equal(t, sections[1].CharStart, res.CharStart)
	assert.Equal(t, sections[1].CharEnd, res.CharEnd)
	assert.Equal(t, extractDoc[res.CharStart:res.CharEnd], res.Text)
	require.Len(t, res.Sections, 1)
	assert.Equal(t, "A", res.Sections[0].Title)
}

func TestExtract_NonAdjacentIndices(t *testing.T) {
	p := New()
	sections := p.Parse(extractDoc)

	// Selecting A and C produces one contiguous span that includes B.
	res := Extract(extractDoc, sections, []int{3, 1})

	assert.Equal(t, sections[1].CharStart, res.CharStart)
	assert.Equal(t, sections[3].CharEnd, res.CharEnd)
	assert.Contains(t, res.Text, "\\section{B}")
	require.Len(t, res.Sections, 3)
	assert.Equal(t, "B", res.Sections[1].Title)
}

func TestExtract_EmptyIndices_FailsOpen(t *testing.T) {
	p := New()
	sections := p.Parse(extractDoc)

	res := Extract(extractDoc, sections, nil)

	assert.Equal(t, extractDoc, res.Text)
	assert.Equal(t, 0, res.CharStart)
	assert.Equal(t, len(extractDoc), res.CharEnd)
	assert.Equal(t, sections, res.Sections)
}

func TestExtract_OutOfBoundsIndex_FailsOpen(t *testing.T) {
	p := New()
	sections := p.Parse(extractDoc)

	for _, indices := range [][]int{{-1}, {99}, {1, 42}} {
		res := Extract(extractDoc, sections, indices)
		assert.Equal(t, extractDoc, res.Text, "indices: %v", indices)
	}
}

func TestExtract_SpanSubstringInvariant(t *testing.T) {
	p := New()
	sections := p.Parse(extractDoc)

	for _, indices := range [][]int{{0}, {1, 2}, {0, 3}, {2, 2}} {
		res := Extract(extractDoc, sections, indices)
		assert.Equal(t, extractDoc[res.CharStart:res.CharEnd], res.Text, "indices: %v", indices)
		for _, idx := range indices {
			assert.LessOrEqual(t, res.CharStart, sections[idx].CharStart)
			assert.GreaterOrEqual(t, res.CharEnd, sections[idx].CharEnd)
		}
	}
}
