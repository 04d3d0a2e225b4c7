package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID         = errors.New("invalid id")
	ErrEmptyNationalID   = errors.New("national id is required")
	ErrEmptyName         = errors.New("name is required")
	ErrEmptyBirthDate    = errors.New("birth date is required")
	ErrInvalidBirthDate  = errors.New("birth date must be a valid YYYY-MM-DD date")
	ErrBirthDateInFuture = errors.New("birth date cannot be in the future")
	ErrInvalidClientID   = errors.New("invalid client id")
)
