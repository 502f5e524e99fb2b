package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrConflict           = errors.New("conflicting related records")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrValidation         = errors.New("validation failed")
)
