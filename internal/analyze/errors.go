package analyze

import (
	"fmt"
	"strings"
)

// Error taxonomy. Input problems and the Vietnamese required-field check
// reach the caller as explicit failures; collaborator failures abort the
// request only for vision generation — derived-attribute lookups degrade to
// sentinels instead.

// InputError is a malformed or missing image. Message carries the localized
// text shown to the caller.
type InputError struct {
	Reason  string
	Message string
}

func (e *InputError) Error() string { return "input: " + e.Reason }

// CollaboratorError wraps a failure of an external collaborator.
type CollaboratorError struct {
	Collaborator string
	Err          error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Collaborator, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }

// ExtractionIncompleteError means the Vietnamese record failed its
// required-field check after the full pipeline. Identity fields are never
// fabricated, so this is surfaced instead of a patched record.
type ExtractionIncompleteError struct {
	Missing []string
}

func (e *ExtractionIncompleteError) Error() string {
	return "missing vietnamese fields: " + strings.Join(e.Missing, ", ")
}
