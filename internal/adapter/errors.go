package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	// ErrNotAuthenticated is returned by uploads attempted without a usable
	// bearer token.
	ErrNotAuthenticated = errors.New("not authenticated to asset store")

	// ErrCredentialsNotFound is returned when the credentials file is missing.
	ErrCredentialsNotFound = errors.New("credentials file does not exist")
)
