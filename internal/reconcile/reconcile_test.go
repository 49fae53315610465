package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/doccontext-mcp/pkg/types"
)

const lineDoc = "Line1\nLine2\nLine3"

func TestResolve_ExactMatch(t *testing.T) {
	r := New()

	rng, ok := r.Resolve(lineDoc, "Line2", ViewMarkdown)

	require.True(t, ok)
	assert.Equal(t, types.Range{Start: 6, End: 11}, rng)
	assert.Equal(t, "Line2", lineDoc[rng.Start:rng.End])
}

func TestResolve_StripsLineNumberDecoration(t *testing.T) {
	r := New()

	// The source view decorates the selection; the document is undecorated.
	rng, ok := r.Resolve(lineDoc, "2 Line2", ViewSource)

	require.True(t, ok)
	assert.Equal(t, types.Range{Start: 6, End: 11}, rng)
}

func TestResolve_MarkdownViewKeepsDigits(t *testing.T) {
	r := New()
	doc := "intro\n42 is the answer"

	rng, ok := r.Resolve(doc, "42 is the answer", ViewMarkdown)

	require.True(t, ok)
	assert.Equal(t, "42 is the answer", doc[rng.Start:rng.End])
}

func TestResolve_MultiLineDecorated(t *testing.T) {
	r := New()

	rng, ok := r.Resolve(lineDoc, "1 Line1\n2 Line2", ViewSource)

	require.True(t, ok)
	assert.Equal(t, types.Range{Start: 0, End: 11}, rng)
}

func TestResolve_LineAnchoredFallback(t *testing.T) {
	r := New()
	doc := "alpha beta\ngamma delta\nepsilon zeta"

	// Renderer normalized interior whitespace, so no exact match exists.
	rng, ok := r.Resolve(doc, "gamma   delta\nepsilon   zeta", ViewMarkdown)

	require.True(t, ok)
	// First line anchors the start at "gamma"; since no literal match for
	// either normalized line exists, the word anchor approximates the end.
	assert.Equal(t, 11, rng.Start)
}

func TestResolve_LineAnchoredMultiLineEnd(t *testing.T) {
	r := New()
	doc := "alpha\ngamma delta\nmiddle\nepsilon zeta\ntail"

	// Leading/trailing whitespace on each selected line defeats the exact
	// match; trimmed first and last lines anchor the span.
	rng, ok := r.Resolve(doc, "  gamma delta \n  epsilon zeta ", ViewMarkdown)

	require.True(t, ok)
	assert.Equal(t, 6, rng.Start)
	assert.Equal(t, "gamma delta\nmiddle\nepsilon zeta", doc[rng.Start:rng.End])
}

func TestResolve_SingleLineTrimmedFallback(t *testing.T) {
	r := New()
	doc := "one\ntwo three\nfour"

	rng, ok := r.Resolve(doc, "  two three  ", ViewMarkdown)

	require.True(t, ok)
	assert.Equal(t, 4, rng.Start)
	assert.Equal(t, "two three", doc[rng.Start:rng.End])
}

func TestResolve_WordAnchoredFallback(t *testing.T) {
	r := New()
	doc := "start\nkeyword appears here\nend"

	// The full line never matches, but its first long word does.
	rng, ok := r.Resolve(doc, "keyword appears here", ViewMarkdown)

	require.True(t, ok)
	assert.Equal(t, 6, rng.Start)
	// End is approximated from the cleaned selection length.
	assert.Equal(t, 6+len("keyword appears here"), rng.End)
}

func TestResolve_WordAnchoredEndClamped(t *testing.T) {
	r := New()
	doc := "tiny\nkeyword"

	rng, ok := r.Resolve(doc, "keyword plus lots of missing trailing text", ViewMarkdown)

	require.True(t, ok)
	assert.Equal(t, 5, rng.Start)
	assert.Equal(t, len(doc), rng.End)
}

func TestResolve_NoResult(t *testing.T) {
	r := New()

	tests := []struct {
		name      string
		selection string
		mode      ViewMode
	}{
		{name: "empty", selection: "", mode: ViewMarkdown},
		{name: "whitespace only", selection: "  \n\t", mode: ViewMarkdown},
		{name: "decoration only", selection: "12 ", mode: ViewSource},
		{name: "nothing findable", selection: "zz qq", mode: ViewMarkdown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := r.Resolve(lineDoc, tt.selection, tt.mode)
			assert.False(t, ok)
		})
	}
}

func TestClean(t *testing.T) {
	assert.Equal(t, "Line2", Clean("2 Line2", ViewSource))
	assert.Equal(t, "a\nb", Clean("10 a\n11 b", ViewSource))
	assert.Equal(t, "2 Line2", Clean("2 Line2", ViewMarkdown))
	assert.Equal(t, "no digits", Clean("no digits", ViewSource))
}
