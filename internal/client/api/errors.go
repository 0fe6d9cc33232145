package api

import "errors"

// Sentinel errors exposed by the transport layer. Callers match them with
// errors.Is; the HTTP implementation maps status codes onto these values.
var (
	// ErrUnauthorized covers bad credentials and missing/expired sessions.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrPermissionDenied is returned when the server rejects a mutation the
	// acting user does not own.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrValidation is returned for missing or malformed resource fields.
	ErrValidation = errors.New("validation error")

	// ErrNotFound is returned when the addressed resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable covers transport failures and server-side errors.
	ErrUnavailable = errors.New("server unavailable")
)
