package types

// CharsPerToken is the fixed character-to-token approximation ratio used
// throughout the core. It is a deliberately crude heuristic, not a real
// tokenizer, and is kept as configuration so truncation boundaries stay
// reproducible.
const CharsPerToken = 4

// Chunk represents a budget-bounded, line-aligned contiguous slice of a text
// produced for size-limited external consumption.
//
// Chunks from the same chunking pass are contiguous and ordered: the CharEnd
// of chunk i equals the CharStart of chunk i+1. Content has trailing
// whitespace trimmed; the offsets still describe the untrimmed source span.
type Chunk struct {
	// Content is the chunk text with trailing whitespace trimmed.
	Content string

	// Character offsets of the untrimmed span in the chunked text
	// (0-based, CharEnd exclusive).
	CharStart int
	CharEnd   int

	// TokenCount is the estimated token count of Content.
	TokenCount int
}

// EstimateTokens estimates the number of tokens in a string using the fixed
// CharsPerToken ratio, rounding up.
func EstimateTokens(text string) int {
	return (len(text) + CharsPerToken - 1) / CharsPerToken
}

// ComputeTokenCount computes and stores the estimated token count for the
// chunk's content.
func (c *Chunk) ComputeTokenCount() int {
	c.TokenCount = EstimateTokens(c.Content)
	return c.TokenCount
}

// Validate checks structural consistency of the chunk.
func (c *Chunk) Validate() error {
	if c.CharStart < 0 || c.CharEnd < c.CharStart {
		return ErrInvalidSpan
	}

	if len(c.Content) > c.CharEnd-c.CharStart {
		return ErrContentExceedsSpan
	}

	return nil
}
