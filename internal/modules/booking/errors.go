package booking

import "errors"

var (
	// ErrForbidden covers every eligibility, capacity, and active-booking
	// failure, including update misses at the store.
	ErrForbidden = errors.New("booking forbidden")
	// ErrNotFound means the referenced room or booking does not exist.
	ErrNotFound = errors.New("booking not found")
)
