package entity

import "errors"

// Failure kinds shared by the state machine, the usecases and the record codecs.
// Callers compare with errors.Is; more specific errors wrap one of these.
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidReference = errors.New("invalid reference")
	ErrInvalidState     = errors.New("invalid state transition")
	ErrAlreadyInState   = errors.New("already in requested state")
	ErrMalformedRecord  = errors.New("malformed record")
)
