// file: internals/features/submissions/moderation/errors.go
package moderation

import "errors"

// Validation errors: raised before any remote call, never retried.
var (
	ErrMissingID         = errors.New("missing submission id")
	ErrNotConfirmed      = errors.New("operation was not confirmed")
	ErrNotFound          = errors.New("submission not found in the loaded collections")
	ErrInvalidTransition = errors.New("transition not allowed from current status")
	ErrNoSession         = errors.New("no edit session is open")
	ErrNotEditable       = errors.New("rejected submissions are not editable")
	ErrUnknownTag        = errors.New("tag value is not in the controlled vocabulary")
	ErrDuplicateImage    = errors.New("image list contains duplicate entries")
)
