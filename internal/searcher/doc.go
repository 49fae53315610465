// Package searcher selects the most relevant slice of an oversized document
// for size-limited external consumption.
//
// The searcher composes the chunker with a keyword-frequency ranker. Scoring
// is a crude term-frequency heuristic weighted toward longer query terms,
// with a flat bonus for chunks that contain structural heading markers. It is
// deliberately not a real search engine: with no embedding or index
// available inside a pure text core, deterministic keyword scoring keeps
// truncation reproducible.
//
// # Basic Usage
//
//	s := searcher.NewSearcher(chunker.New())
//	result := s.Truncate(ctx, document, 4000, "rewrite the conclusion")
//
//	if result.Truncated {
//	    // result.Text is one chunk's worth of the most relevant content
//	}
//
// # Determinism
//
// Ties and all-zero scores resolve to the earliest chunk, so repeated calls
// over the same input always pick the same slice.
package searcher
