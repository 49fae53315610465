// Package reconcile recovers canonical document character offsets from a
// possibly-decorated, possibly-imprecise on-screen text selection.
//
// A selection arrives as the raw highlighted text from one of two views: the
// windowed source view, which prefixes each line with a synthetic line
// number, or the rendered markdown view, which does not. Reconciliation
// first strips any decoration, then tries an ordered pipeline of strategies
// against the canonical document:
//
//  1. exact substring match
//  2. line-anchored fallback (first and last non-blank trimmed lines)
//  3. word-anchored fallback (first long word, approximated end)
//
// Each stage is strictly less exact than the previous. When every stage
// fails, Resolve reports no result and the caller falls back to
// full-document targeting rather than guessing.
//
//	r := reconcile.New()
//	rng, ok := r.Resolve(doc, selectedText, reconcile.ViewSource)
//	if !ok {
//	    // selection unusable; target the whole document
//	}
package reconcile
