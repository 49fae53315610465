// Package session holds the canonical document snapshot for an editing
// session and the edit proposals pending review against it.
//
// The document is an immutable string snapshot; accepting a proposal
// produces a new snapshot and bumps the session version. Pending proposals
// live in an LRU cache so an abandoned proposal is eventually evicted
// rather than retained forever.
//
// Selections are validated defensively: Revalidate only passes a selection
// through when the document substring at its offsets still equals the
// originally selected text, and otherwise re-derives the offsets through the
// reconciler. This is what makes it safe to resolve a selection, dispatch a
// slow external rewrite, and splice the result into whatever snapshot is
// current when it returns.
package session
