package domain

import "errors"

// Sentinel errors shared by services and mapped to HTTP status codes by the delivery layer.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")

	// ErrInvalidFormat is returned when a date or wall-clock time does not parse.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrInvalidRange is returned when an end date or time is not after its start.
	ErrInvalidRange = errors.New("end must be after start")

	ErrNameConflict = errors.New("event name already in use")
	ErrDateConflict = errors.New("event dates overlap an existing event")
	ErrTimeConflict = errors.New("time slot conflicts with an existing time slot")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already in use")
)
