package searcher

import "context"

// Truncation is the result of applying the truncation policy to a text.
type Truncation struct {
	// Text is the in-budget content: the input itself when it fits, or a
	// single chunk's worth of it otherwise.
	Text string

	// Truncated reports whether content was cut.
	Truncated bool

	// OriginalLength is the character length of the input.
	OriginalLength int
}

// Truncate reduces text to at most maxChars characters. Input that fits is
// returned unchanged. Oversized input is chunked; a non-empty query selects
// the most relevant chunk, otherwise the first chunk is taken.
//
// The policy never reassembles multiple chunks: a truncation always yields
// exactly one chunk's worth of content, favoring relevance over completeness.
func (s *Searcher) Truncate(ctx context.Context, text string, maxChars int, query string) Truncation {
	if len(text) <= maxChars {
		return Truncation{Text: text, OriginalLength: len(text)}
	}

	chunks := s.chunker.Chunk(text, maxChars)

	chosen := chunks[0]
	if query != "" {
		if best, ok := s.Rank(ctx, chunks, query); ok {
			chosen = best
		}
	}

	return Truncation{
		Text:           chosen.Content,
		Truncated:      true,
		OriginalLength: len(text),
	}
}
