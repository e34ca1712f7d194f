package prompt

import "errors"

var (
	// ErrTemplateNotFound is returned when a template name is not in the library.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMissingVariable is returned when a render call does not supply a value for
	// one of the template's declared variables.
	ErrMissingVariable = errors.New("missing template variable")

	// ErrInvalidLibrary is returned by Validate and by the loader when the template
	// files are inconsistent.
	ErrInvalidLibrary = errors.New("invalid prompt library")
)
