package registry

import "errors"

var (
	ErrInvalidProposalType = errors.New("invalid proposal type")
	ErrDuplicateProposal   = errors.New("proposal already exists")
	ErrProposalNotFound    = errors.New("proposal not found")
	ErrNotApproved         = errors.New("proposal not approved")
	ErrAlreadyExecuted     = errors.New("proposal already executed")
	ErrUnauthorized        = errors.New("executor not authorized")

	// ErrExecutionFailed is reserved for hard handler failures, as
	// distinct from a handler's recorded "false" verdict. No code path
	// returns it yet.
	ErrExecutionFailed = errors.New("proposal execution failed")
)
