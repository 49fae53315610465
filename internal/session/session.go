package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dshills/doccontext-mcp/internal/reconcile"
	"github.com/dshills/doccontext-mcp/pkg/types"
)

// DefaultMaxProposals is the proposal cache capacity used when the caller
// supplies none.
const DefaultMaxProposals = 128

var (
	// ErrUnknownProposal is returned when no pending proposal has the
	// given identifier.
	ErrUnknownProposal = errors.New("unknown proposal")

	// ErrStaleProposal is returned when a proposal's original text no
	// longer appears in the current document snapshot.
	ErrStaleProposal = errors.New("proposal original not found in current document")
)

// Session owns the canonical document snapshot for one editing session and
// the edit proposals pending review against it.
//
// The document is the single source of truth; sections, chunks, and
// selections are derived views recomputed from it. Every accepted proposal
// produces a new snapshot and bumps the version, which is how callers detect
// that selections taken earlier must be re-derived.
type Session struct {
	mu         sync.RWMutex
	doc        string
	version    int
	proposals  *lru.Cache[string, *types.EditProposal]
	reconciler *reconcile.Reconciler
}

// New creates a Session holding at most maxProposals pending proposals.
// Least recently used proposals are evicted when the cache fills.
func New(maxProposals int) (*Session, error) {
	if maxProposals <= 0 {
		maxProposals = DefaultMaxProposals
	}

	cache, err := lru.New[string, *types.EditProposal](maxProposals)
	if err != nil {
		return nil, fmt.Errorf("failed to create proposal cache: %w", err)
	}

	return &Session{
		proposals:  cache,
		reconciler: reconcile.New(),
	}, nil
}

// Load replaces the document snapshot and returns the new version.
func (s *Session) Load(doc string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = doc
	s.version++
	return s.version
}

// Document returns the current snapshot and its version.
func (s *Session) Document() (string, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc, s.version
}

// Propose registers a pending edit and returns its identifier. Proposals
// that change nothing are rejected.
func (s *Session) Propose(original, modified, description string) (string, error) {
	p := &types.EditProposal{
		Original:    original,
		Modified:    modified,
		Description: description,
	}
	if err := p.Validate(); err != nil {
		return "", fmt.Errorf("invalid proposal: %w", err)
	}

	id := p.ID()
	s.mu.Lock()
	s.proposals.Add(id, p)
	s.mu.Unlock()
	return id, nil
}

// Proposal returns a pending proposal without consuming it.
func (s *Session) Proposal(id string) (*types.EditProposal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.proposals.Get(id)
}

// Accept splices a proposal's modified text into the current snapshot and
// consumes the proposal. The original text is located in the snapshot at
// acceptance time, not at proposal time: if the document changed underneath
// and the original can no longer be found, ErrStaleProposal is returned and
// nothing is spliced (the proposal is still consumed).
func (s *Session) Accept(id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.proposals.Get(id)
	if !ok {
		return "", ErrUnknownProposal
	}
	s.proposals.Remove(id)

	if s.doc == p.Original {
		s.doc = p.Modified
		s.version++
		return s.doc, nil
	}

	idx := strings.Index(s.doc, p.Original)
	if idx < 0 {
		return "", ErrStaleProposal
	}

	s.doc = s.doc[:idx] + p.Modified + s.doc[idx+len(p.Original):]
	s.version++
	return s.doc, nil
}

// Reject discards a pending proposal.
func (s *Session) Reject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.proposals.Get(id); !ok {
		return ErrUnknownProposal
	}
	s.proposals.Remove(id)
	return nil
}

// PendingProposals returns the number of proposals awaiting review.
func (s *Session) PendingProposals() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.proposals.Len()
}

// ResolveSelection reconciles raw selected text against the current snapshot
// and returns a Selection bound to it.
func (s *Session) ResolveSelection(text string, mode reconcile.ViewMode) (types.Selection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rng, ok := s.reconciler.Resolve(s.doc, text, mode)
	if !ok {
		return types.Selection{}, false
	}

	return types.Selection{
		Start: rng.Start,
		End:   rng.End,
		Text:  s.doc[rng.Start:rng.End],
	}, true
}

// Revalidate checks a selection against the current snapshot. A selection
// whose offsets still address its original text passes through unchanged;
// otherwise its offsets are re-derived from its text through the reconciler.
// Selections computed against an older snapshot must never be spliced
// without this re-derivation.
func (s *Session) Revalidate(sel types.Selection, mode reconcile.ViewMode) (types.Selection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sel.ValidAgainst(s.doc) {
		return sel, true
	}

	rng, ok := s.reconciler.Resolve(s.doc, sel.Text, mode)
	if !ok {
		return types.Selection{}, false
	}

	return types.Selection{
		Start: rng.Start,
		End:   rng.End,
		Text:  s.doc[rng.Start:rng.End],
	}, true
}
