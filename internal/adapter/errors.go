package adapter

import "errors"

// Transport errors produced by mapHTTPError. The server's response body
// follows the sentinel after ": ".
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrInvalidAddress is returned by the constructor for an unusable base
	// URL.
	ErrInvalidAddress = errors.New("invalid adapter http address")
)
