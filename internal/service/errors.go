package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validation failure so the transport
	// layer can answer with a single client-error status.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
