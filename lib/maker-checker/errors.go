package makercheckerhandler

import "github.com/pkg/errors"

// Precondition and execution failures of the dual-control workflow. All are
// expected, recoverable outcomes matched with errors.Is; infrastructure
// failures propagate as plain wrapped errors.
var (
	ErrNotFound              = errors.New("change request is not found")
	ErrAlreadyProcessed      = errors.New("change request has already been processed")
	ErrSelfApproval          = errors.New("checker can not be the same as maker")
	ErrMissingComments       = errors.New("rejection requires comments")
	ErrInvalidState          = errors.New("change request is not in the required status")
	ErrMalformedPayload      = errors.New("change request payload is malformed")
	ErrUnsupportedEntityType = errors.New("no executor is registered for the entity type")
	ErrExecutionFailed       = errors.New("failed to apply the approved change")
)
