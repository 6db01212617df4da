package bridge

import "errors"

var (
	// ErrUnknownCommand is returned when resolving a name with no
	// registered handler. It is surfaced to the caller as an error
	// response, one invocation at a time.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrDuplicateCommand is returned when a name is registered twice.
	// This is a bootstrap defect: registration must abort rather than
	// proceed with an ambiguous registry.
	ErrDuplicateCommand = errors.New("duplicate command")
)
