package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/doccontext-mcp/pkg/types"
)

func TestNew(t *testing.T) {
	c := New()
	assert.NotNil(t, c)
}

func TestChunk_FitsBudget(t *testing.T) {
	c := New()
	text := "line one\nline two"

	chunks := c.Chunk(text, 100)

	require.Len(t, chunks, 1)
	assert.Equal(t, text, chunks[0].Content)
	assert.Equal(t, 0, chunks[0].CharStart)
	assert.Equal(t, len(text), chunks[0].CharEnd)
	assert.Equal(t, types.EstimateTokens(text), chunks[0].TokenCount)
}

func TestChunk_SplitsOnLineBoundaries(t *testing.T) {
	c := New()
	text := "aaaa\nbbbb\ncccc\ndddd"

	chunks := c.Chunk(text, 10)

	require.Len(t, chunks, 2)
	assert.Equal(t, "aaaa\nbbbb", chunks[0].Content)
	assert.Equal(t, 0, chunks[0].CharStart)
	assert.Equal(t, 10, chunks[0].CharEnd)
	assert.Equal(t, "cccc\ndddd", chunks[1].Content)
	assert.Equal(t, 10, chunks[1].CharStart)
	assert.Equal(t, 19, chunks[1].CharEnd)
}

func TestChunk_OversizedLine(t *testing.T) {
	c := New()
	long := strings.Repeat("x", 50)
	text := "ab\n" + long + "\ncd"

	chunks := c.Chunk(text, 10)

	require.Len(t, chunks, 3)
	assert.Equal(t, "ab", chunks[0].Content)
	assert.Equal(t, long, chunks[1].Content)
	assert.Equal(t, "cd", chunks[2].Content)
}

func TestChunk_TrimsTrailingWhitespaceFromContentOnly(t *testing.T) {
	c := New()
	text := "aaaa   \nbbbb\ncccc"

	chunks := c.Chunk(text, 9)

	require.Len(t, chunks, 2)
	assert.Equal(t, "aaaa", chunks[0].Content)
	// Offsets still cover the untrimmed span.
	assert.Equal(t, 8, chunks[0].CharEnd)
	assert.Equal(t, 8, chunks[1].CharStart)
}

func TestChunk_TilesInput(t *testing.T) {
	c := New()

	texts := []string{
		"a\nbb\nccc\ndddd\neeeee\nffffff",
		strings.Repeat("word ", 40),
		"trailing newline\nhere\n",
		"single",
	}

	for _, text := range texts {
		for _, maxChars := range []int{1, 5, 8, 1000} {
			chunks := c.Chunk(text, maxChars)
			require.NotEmpty(t, chunks, "text: %q max: %d", text, maxChars)

			assert.Equal(t, 0, chunks[0].CharStart)
			assert.Equal(t, len(text), chunks[len(chunks)-1].CharEnd)
			for i, chunk := range chunks {
				require.NoError(t, chunk.Validate())
				if i > 0 {
					assert.Equal(t, chunks[i-1].CharEnd, chunk.CharStart,
						"text: %q max: %d chunk: %d", text, maxChars, i)
				}
				// Content is the span text minus trailing whitespace.
				span := text[chunk.CharStart:chunk.CharEnd]
				assert.True(t, strings.HasPrefix(span, chunk.Content),
					"text: %q max: %d chunk: %d", text, maxChars, i)
			}
		}
	}
}

func TestEstimateTokens_RoundsUp(t *testing.T) {
	assert.Equal(t, 0, types.EstimateTokens(""))
	assert.Equal(t, 1, types.EstimateTokens("abc"))
	assert.Equal(t, 1, types.EstimateTokens("abcd"))
	assert.Equal(t, 2, types.EstimateTokens("abcde"))
}

func TestCheckBudget(t *testing.T) {
	small := CheckBudget("short text", "gpt-4o")
	assert.True(t, small.Valid)
	assert.Equal(t, types.EstimateTokens("short text"), small.EstimatedTokens)
	assert.Equal(t, 100_000, small.MaxTokens)

	big := CheckBudget(strings.Repeat("x", 49_000), "gpt-3.5-turbo")
	assert.False(t, big.Valid)
	assert.Equal(t, 12_250, big.EstimatedTokens)
	assert.Equal(t, 12_000, big.MaxTokens)
}

func TestBudgetFor_UnknownModelFallsBack(t *testing.T) {
	assert.Equal(t, BudgetFor(DefaultModel), BudgetFor("no-such-model"))
}
