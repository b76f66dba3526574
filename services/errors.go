package services

import (
	"errors"
)

// Domain errors returned by the service layer. Handlers map these to HTTP
// status codes with errors.Is so the taxonomy stays independent of the
// transport.
var (
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("resource conflict")
	ErrUnauthorized       = errors.New("unauthorized access")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden access")
	ErrNotFound           = errors.New("requested resource not found")
)
