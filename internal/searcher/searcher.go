package searcher

import (
	"context"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/doccontext-mcp/internal/chunker"
	"github.com/dshills/doccontext-mcp/internal/parser"
	"github.com/dshills/doccontext-mcp/pkg/types"
)

const (
	// HeadingBonus is the flat score added to a chunk containing a
	// structural heading marker.
	HeadingBonus = 10

	// MinTermLen is the minimum query token length considered during
	// scoring. Shorter tokens are discarded as noise.
	MinTermLen = 3
)

// Searcher ranks chunks against free-text queries and applies the truncation
// policy by composing the chunker with the ranker.
type Searcher struct {
	chunker *chunker.Chunker
}

// NewSearcher creates a new Searcher instance
func NewSearcher(c *chunker.Chunker) *Searcher {
	return &Searcher{chunker: c}
}

// Rank scores each chunk against the query and returns the highest-scoring
// chunk. If every score is zero, the first chunk is returned so behavior
// stays deterministic on ties and no-match queries. Ranking an empty chunk
// slice returns a zero chunk and false.
func (s *Searcher) Rank(ctx context.Context, chunks []types.Chunk, query string) (types.Chunk, bool) {
	if len(chunks) == 0 {
		return types.Chunk{}, false
	}

	terms := queryTerms(query)
	scores := make([]int, len(chunks))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range chunks {
		g.Go(func() error {
			scores[i] = scoreChunk(chunks[i].Content, terms)
			return nil
		})
	}
	_ = g.Wait() // scoring never fails

	best := 0
	bestScore := 0
	for i, score := range scores {
		if score > bestScore {
			best = i
			bestScore = score
		}
	}

	return chunks[best], true
}

// queryTerms tokenizes the query by whitespace, lowercases the tokens, and
// discards tokens shorter than MinTermLen.
func queryTerms(query string) []string {
	fields := strings.Fields(query)
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < MinTermLen {
			continue
		}
		terms = append(terms, strings.ToLower(f))
	}
	return terms
}

// scoreChunk computes a crude TF score weighted toward longer, more specific
// terms, plus a flat bonus when the chunk carries structural headings.
func scoreChunk(content string, terms []string) int {
	lower := strings.ToLower(content)

	score := 0
	for _, term := range terms {
		score += strings.Count(lower, term) * len(term)
	}

	for _, line := range strings.Split(content, "\n") {
		if parser.IsHeadingLine(line) {
			score += HeadingBonus
			break
		}
	}

	return score
}
