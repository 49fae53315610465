// Package types provides shared type definitions for the DocContext MCP
// server.
//
// This package defines the domain types used across the document-context
// core: sections, chunks, diff lines, selections, and edit proposals.
//
// # Core Types
//
// Section represents a structurally delimited span of a document headed by a
// heading marker (or the implicit preamble):
//
//	section := &types.Section{
//	    Title:   "Introduction",
//	    Command: "section",
//	    Level:   2,
//	}
//
// Chunk represents a line-aligned slice of text bounded by a character
// budget, produced when a document is too large to send to a model whole:
//
//	chunk := &types.Chunk{
//	    Content:   body,
//	    CharStart: 0,
//	    CharEnd:   len(body),
//	}
//	chunk.ComputeTokenCount()
//
// # Offsets
//
// All character offsets are 0-based byte offsets into the canonical document
// string, with end offsets exclusive. The sections of a document partition
// [0, len(document)); the chunks of a chunking pass partition the chunked
// text the same way.
//
// # Token Estimation
//
// Token counts are estimated with the fixed CharsPerToken (chars/4) heuristic
// rather than an exact tokenizer. The ratio is deliberately configuration,
// not measurement: keeping it fixed makes truncation boundaries reproducible.
//
// # Selections and Proposals
//
// Selection and EditProposal model the two transient artifacts of an editing
// round trip. A Selection records where in the document the user pointed; it
// must be re-validated against the current snapshot before use:
//
//	if !sel.ValidAgainst(doc) {
//	    // re-derive offsets through the reconciler
//	}
//
// An EditProposal holds the before/after snapshots of a model rewrite until
// the user accepts or rejects it.
//
// # Validation
//
// Domain types implement Validate methods to ensure data integrity:
//
//	if err := section.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package types
