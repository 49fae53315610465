package searcher

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/doccontext-mcp/internal/chunker"
	"github.com/dshills/doccontext-mcp/pkg/types"
)

func newTestSearcher() *Searcher {
	return NewSearcher(chunker.New())
}

func chunksFrom(contents ...string) []types.Chunk {
	chunks := make([]types.Chunk, len(contents))
	offset := 0
	for i, content := range contents {
		chunks[i] = types.Chunk{Content: content, CharStart: offset, CharEnd: offset + len(content)}
		chunks[i].ComputeTokenCount()
		offset += len(content)
	}
	return chunks
}

func TestRank_FrequencyWeighted(t *testing.T) {
	s := newTestSearcher()
	chunks := chunksFrom("apple banana", "banana banana banana")

	best, ok := s.Rank(context.Background(), chunks, "banana")

	require.True(t, ok)
	assert.Equal(t, chunks[1], best)
}

func TestRank_LongerTermsWeighMore(t *testing.T) {
	s := newTestSearcher()
	// One long-term hit (9 points) beats two short-term hits (8 points).
	chunks := chunksFrom("dogs dogs cats", "migration notes")

	best, ok := s.Rank(context.Background(), chunks, "dogs migration")

	require.True(t, ok)
	assert.Equal(t, chunks[1], best)
}

func TestRank_ShortTokensDiscarded(t *testing.T) {
	s := newTestSearcher()
	chunks := chunksFrom("aa bb cc", "unrelated text")

	// All query tokens are too short to score; falls back to first chunk.
	best, ok := s.Rank(context.Background(), chunks, "aa bb")

	require.True(t, ok)
	assert.Equal(t, chunks[0], best)
}

func TestRank_HeadingBonus(t *testing.T) {
	s := newTestSearcher()
	chunks := chunksFrom("plain body text", "\\section{Results}\nbody")

	best, ok := s.Rank(context.Background(), chunks, "nomatch")

	require.True(t, ok)
	assert.Equal(t, chunks[1], best)
}

func TestRank_CaseInsensitive(t *testing.T) {
	s := newTestSearcher()
	chunks := chunksFrom("nothing here", "BANANA split")

	best, ok := s.Rank(context.Background(), chunks, "Banana")

	require.True(t, ok)
	assert.Equal(t, chunks[1], best)
}

func TestRank_NoChunks(t *testing.T) {
	s := newTestSearcher()

	_, ok := s.Rank(context.Background(), nil, "query")

	assert.False(t, ok)
}

func TestRank_AllZeroFallsBackToFirst(t *testing.T) {
	s := newTestSearcher()
	chunks := chunksFrom("alpha", "beta", "gamma")

	best, ok := s.Rank(context.Background(), chunks, "zzz")

	require.True(t, ok)
	assert.Equal(t, chunks[0], best)
}

func TestTruncate_FitsUnchanged(t *testing.T) {
	s := newTestSearcher()
	text := "short document"

	res := s.Truncate(context.Background(), text, 100, "")

	assert.False(t, res.Truncated)
	assert.Equal(t, text, res.Text)
	assert.Equal(t, len(text), res.OriginalLength)
}

func TestTruncate_NoQueryTakesFirstChunk(t *testing.T) {
	s := newTestSearcher()
	text := "first part\nsecond part\nthird part"

	res := s.Truncate(context.Background(), text, 12, "")

	assert.True(t, res.Truncated)
	assert.Equal(t, "first part", res.Text)
	assert.Equal(t, len(text), res.OriginalLength)
}

func TestTruncate_QueryDirected(t *testing.T) {
	s := newTestSearcher()
	text := "first part\nsecond part\nelephant habitat notes"

	res := s.Truncate(context.Background(), text, 22, "elephant")

	assert.True(t, res.Truncated)
	assert.Contains(t, res.Text, "elephant")
}

func TestTruncate_NeverExceedsBudgetForInBudgetLines(t *testing.T) {
	s := newTestSearcher()
	text := strings.Repeat("a line of text\n", 50)

	res := s.Truncate(context.Background(), text, 100, "")

	assert.True(t, res.Truncated)
	assert.LessOrEqual(t, len(res.Text), 100)
}

func TestQueryTerms(t *testing.T) {
	assert.Equal(t, []string{"banana", "split"}, queryTerms("Banana a of Split"))
	assert.Empty(t, queryTerms("a of to"))
	assert.Empty(t, queryTerms(""))
}
