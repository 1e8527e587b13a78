package enrollment

import (
	"context"

	"confstay/internal/domain"
	"confstay/internal/pkg/validator"
)

type Service struct {
	enrollments EnrollmentRepository
	tickets     TicketRepository
}

func NewService(enrollments EnrollmentRepository, tickets TicketRepository) *Service {
	return &Service{
		enrollments: enrollments,
		tickets:     tickets,
	}
}

func (s *Service) GetEnrollment(ctx context.Context, userID int64) (*domain.Enrollment, error) {
	e, err := s.enrollments.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrNotFound
	}
	return e, nil
}

// UpsertEnrollment creates the user's enrollment or replaces its fields.
// A user holds at most one enrollment.
func (s *Service) UpsertEnrollment(ctx context.Context, userID int64, req UpsertEnrollmentRequest) (*domain.Enrollment, error) {
	existing, err := s.enrollments.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		e := &domain.Enrollment{
			UserID:    userID,
			Name:      req.Name,
			CPF:       req.CPF,
			Phone:     req.Phone,
			BirthDate: req.BirthDate,
		}
		if errs := validator.Validate(e); errs != nil {
			return nil, ErrValidation
		}
		if err := s.enrollments.Create(ctx, e); err != nil {
			return nil, err
		}
		return e, nil
	}

	existing.Name = req.Name
	existing.CPF = req.CPF
	existing.Phone = req.Phone
	existing.BirthDate = req.BirthDate
	if errs := validator.Validate(existing); errs != nil {
		return nil, ErrValidation
	}
	if err := s.enrollments.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) GetTicket(ctx context.Context, userID int64) (*domain.Ticket, error) {
	e, err := s.enrollments.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrNoEnrollment
	}

	t, err := s.tickets.GetByEnrollmentID(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNotFound
	}
	return t, nil
}

// CreateTicket issues a RESERVED ticket for the user's enrollment. Payment is
// handled upstream; a ticket only becomes PAID outside this surface.
func (s *Service) CreateTicket(ctx context.Context, userID, ticketTypeID int64) (*domain.Ticket, error) {
	e, err := s.enrollments.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrNoEnrollment
	}

	tt, err := s.tickets.GetTypeByID(ctx, ticketTypeID)
	if err != nil {
		return nil, err
	}
	if tt == nil {
		return nil, ErrBadTicketType
	}

	t := &domain.Ticket{
		EnrollmentID: e.ID,
		TicketTypeID: tt.ID,
		Status:       domain.TicketReserved,
	}
	if err := s.tickets.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) ListTicketTypes(ctx context.Context) ([]domain.TicketType, error) {
	return s.tickets.ListTypes(ctx)
}
