// Package chunker divides document text into line-aligned chunks bounded by a
// character budget.
//
// Chunking is the first half of preparing an oversized document for a
// size-limited external consumer; relevance ranking over the resulting chunks
// is handled by the searcher package.
//
// # Basic Usage
//
//	c := chunker.New()
//	chunks := c.Chunk(text, 4000)
//
//	for _, chunk := range chunks {
//	    fmt.Printf("%d tokens, chars [%d-%d)\n",
//	        chunk.TokenCount, chunk.CharStart, chunk.CharEnd)
//	}
//
// # Boundaries
//
// Chunk boundaries always fall on line breaks. A single line longer than the
// budget becomes its own oversized chunk rather than being split mid-line.
// Chunks from one pass are contiguous and tile the input text.
//
// # Budgets
//
// Token estimation uses the fixed chars/4 heuristic from pkg/types. Per-model
// token and character ceilings live in a static table; CheckBudget validates
// a text against a model's ceiling so callers can decide whether truncation
// is needed before dispatch.
package chunker
