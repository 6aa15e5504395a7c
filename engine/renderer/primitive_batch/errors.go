package primitive_batch

import "errors"

var (
	// ErrAlreadyBegun is returned by Begin when the batch is already between Begin and End.
	ErrAlreadyBegun = errors.New("primitive batch has already begun")

	// ErrNotBegun is returned by End and the draw methods outside of Begin and End.
	ErrNotBegun = errors.New("primitive batch has not begun")

	// ErrCapacityExceeded is returned when one primitive needs more vertices than the batch holds.
	ErrCapacityExceeded = errors.New("primitive exceeds batch capacity")
)
