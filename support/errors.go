package support

import "errors"

var (
	// ErrInvalidDate indicates a booking date that is not a YYYY-MM-DD calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrUnavailableTime indicates a booking time outside the fixed slots.
	ErrUnavailableTime = errors.New("unavailable time slot")
)
