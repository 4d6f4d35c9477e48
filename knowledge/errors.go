package knowledge

import "errors"

var (
	// ErrInvalidSeed indicates the knowledge seed violates an invariant.
	ErrInvalidSeed = errors.New("invalid knowledge seed")

	// ErrAppointmentNotFound indicates no appointment has the given id.
	ErrAppointmentNotFound = errors.New("appointment not found")
)
