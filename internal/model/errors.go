package model

import "errors"

// Error taxonomy for collaborator failures. CollaboratorUnavailable and
// MalformedResponse are recovered inside the pipeline by substituting a
// neutral default and recording a warning; InvalidInput is the only error
// the orchestrator returns to its caller.
var (
	// ErrCollaboratorUnavailable marks an adapter, network, or model call
	// that failed or timed out.
	ErrCollaboratorUnavailable = errors.New("collaborator unavailable")

	// ErrMalformedResponse marks a collaborator response that could not be
	// parsed into the structured draft.
	ErrMalformedResponse = errors.New("malformed collaborator response")

	// ErrInvalidInput marks a request with no content or an unreadable
	// file reference.
	ErrInvalidInput = errors.New("invalid input")
)
