package types

import "errors"

// Domain errors for type validation
var (
	// Section and chunk errors
	ErrInvalidSpan        = errors.New("invalid character span")
	ErrInvalidLineRange   = errors.New("invalid line range")
	ErrContentExceedsSpan = errors.New("content longer than its span")

	// Diff errors
	ErrInvalidLineKind    = errors.New("invalid diff line kind")
	ErrInvalidLineNumbers = errors.New("line numbers inconsistent with kind")

	// Proposal errors
	ErrNoChange = errors.New("proposal contains no change")
)
