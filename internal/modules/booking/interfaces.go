package booking

import (
	"context"

	"confstay/internal/domain"
)

// EnrollmentRepository — only the lookup the booking service needs
type EnrollmentRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error)
}

// TicketRepository — only the lookup the booking service needs
type TicketRepository interface {
	GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error)
}

// RoomRepository — room lookup with occupant count populated
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// BookingRepository defines the mutating collaborator. Finders return nil
// without error when no row exists.
type BookingRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Booking, error)
	Create(ctx context.Context, b *domain.Booking) error
	UpdateRoom(ctx context.Context, userID, roomID, bookingID int64) (*domain.Booking, error)
}
