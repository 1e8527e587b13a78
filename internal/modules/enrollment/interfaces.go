package enrollment

import (
	"context"

	"confstay/internal/domain"
)

type EnrollmentRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error)
	Create(ctx context.Context, e *domain.Enrollment) error
	Update(ctx context.Context, e *domain.Enrollment) error
}

type TicketRepository interface {
	GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error)
	Create(ctx context.Context, t *domain.Ticket) error
	GetTypeByID(ctx context.Context, id int64) (*domain.TicketType, error)
	ListTypes(ctx context.Context) ([]domain.TicketType, error)
}
