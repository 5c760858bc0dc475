package catalog

import "errors"

// Sentinel errors for input failures. Both are rendered as user-visible form
// messages; callers can tell them apart with errors.Is.
var (
	// ErrValidation indicates a missing required field or a reference to a
	// nonexistent author. The request is not applied.
	ErrValidation = errors.New("validation failed")

	// ErrParse indicates a malformed date or a non-numeric integer field.
	ErrParse = errors.New("parse failed")
)
