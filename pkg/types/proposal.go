package types

import (
	"crypto/sha256"
	"encoding/hex"
)

// EditProposal holds a pending rewrite produced by an external model call:
// two full snapshots of the edited text plus a human-readable label.
//
// A proposal is created when a model response is parsed and consumed
// (discarded) when the user accepts or rejects it.
type EditProposal struct {
	Original    string
	Modified    string
	Description string
}

// ID returns a stable identifier derived from the proposal contents.
func (p *EditProposal) ID() string {
	h := sha256.New()
	h.Write([]byte(p.Original))
	h.Write([]byte{0})
	h.Write([]byte(p.Modified))
	h.Write([]byte{0})
	h.Write([]byte(p.Description))
	return hex.EncodeToString(h.Sum(nil)[:16])
}

// Validate checks that the proposal actually proposes a change.
func (p *EditProposal) Validate() error {
	if p.Original == p.Modified {
		return ErrNoChange
	}
	return nil
}
