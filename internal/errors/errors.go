package errors

import "errors"

// This package defines the sentinel errors shared across the service. Lower layers
// wrap these so the API layer can pick a status code with errors.Is without knowing
// where the failure came from.

var (
	// ErrValidation signifies that the request body could not be understood at all
	// (for example, syntactically broken JSON). Missing fields are never an error;
	// they are defaulted.
	// This is mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrUnknownSection signifies that a lesson-plan section key outside the
	// known set was requested.
	// This is mapped to a 400 Bad Request HTTP status.
	ErrUnknownSection = errors.New("unknown section")

	// ErrProvider signifies that the completion provider, or the transport in front
	// of it, failed. The wrapping error carries the provider's own message.
	// This is mapped to a 500 Internal Server Error HTTP status.
	ErrProvider = errors.New("completion provider failed")

	// ErrInternal signifies an unexpected error on the server, such as a template
	// that does not match its call site.
	// This is mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")
)
