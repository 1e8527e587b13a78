package booking

import (
	"context"
	"errors"

	"confstay/internal/domain"
	"confstay/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	bookings    BookingRepository
	rooms       RoomRepository
	enrollments EnrollmentRepository
	tickets     TicketRepository
}

func NewService(
	bookings BookingRepository,
	rooms RoomRepository,
	enrollments EnrollmentRepository,
	tickets TicketRepository,
) *Service {
	return &Service{
		bookings:    bookings,
		rooms:       rooms,
		enrollments: enrollments,
		tickets:     tickets,
	}
}

// GetBookingForUser returns the user's booking with its room attached.
func (s *Service) GetBookingForUser(ctx context.Context, userID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

// CreateBooking reserves a room for the user. Checks run fail-fast in a fixed
// order: eligibility in principle first, then the already-booked rule, then
// the room itself. An ineligible user never triggers a room lookup.
func (s *Service) CreateBooking(ctx context.Context, userID, roomID int64) (*domain.Booking, error) {
	if err := s.checkTicketEligibility(ctx, userID); err != nil {
		return nil, err
	}

	active, err := s.bookings.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, ErrForbidden
	}

	if err := s.checkRoomCapacity(ctx, roomID); err != nil {
		return nil, err
	}

	b := &domain.Booking{
		UserID: userID,
		RoomID: roomID,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, mapStoreError(err)
	}

	return b, nil
}

// ChangeBooking moves an existing booking to another room. The same ticket
// checks as create apply, but not the already-booked rule: holding a booking
// is what makes an edit possible. A store miss on the update surfaces as
// ErrForbidden — editing a booking that is not yours (or not there) is an
// authorization failure, not a discovery one.
func (s *Service) ChangeBooking(ctx context.Context, userID, roomID, bookingID int64) (*domain.Booking, error) {
	if err := s.checkTicketEligibility(ctx, userID); err != nil {
		return nil, err
	}

	if err := s.checkRoomCapacity(ctx, roomID); err != nil {
		return nil, err
	}

	b, err := s.bookings.UpdateRoom(ctx, userID, roomID, bookingID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if b == nil {
		return nil, ErrForbidden
	}

	return b, nil
}

// checkTicketEligibility enforces the enrollment and ticket rules: the user
// must be enrolled, hold a PAID in-person ticket, and the ticket type must
// include a hotel stay.
func (s *Service) checkTicketEligibility(ctx context.Context, userID int64) error {
	enrollment, err := s.enrollments.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if enrollment == nil {
		return ErrForbidden
	}

	ticket, err := s.tickets.GetByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return err
	}
	if ticket == nil ||
		ticket.Status == domain.TicketReserved ||
		ticket.TicketType == nil ||
		ticket.TicketType.IsRemote ||
		!ticket.TicketType.IncludesHotel {
		return ErrForbidden
	}

	return nil
}

func (s *Service) checkRoomCapacity(ctx context.Context, roomID int64) error {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return err
	}
	if room == nil {
		return ErrNotFound
	}
	if room.Occupants >= room.Capacity {
		return ErrForbidden
	}
	return nil
}

// mapStoreError translates store-level losses of the pre-check races into the
// two error kinds the callers know: a full room or a duplicate active booking
// is Forbidden, a room deleted between check and write is NotFound.
func mapStoreError(err error) error {
	if errors.Is(err, repository.ErrRoomFull) {
		return ErrForbidden
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrForbidden
	}
	if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
		return ErrForbidden
	}
	return err
}
