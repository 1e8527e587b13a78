package enrollment

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrNoEnrollment  = errors.New("user has no enrollment")
	ErrBadTicketType = errors.New("unknown ticket type")
	ErrValidation    = errors.New("validation error")
)
