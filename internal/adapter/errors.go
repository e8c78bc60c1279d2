package adapter

import "errors"

// Sentinel errors mapped from backend HTTP statuses by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

// ErrNoRecordReturned is returned when an insert succeeds but the backend
// sends back no representation of the new record.
var ErrNoRecordReturned = errors.New("backend returned no record")
