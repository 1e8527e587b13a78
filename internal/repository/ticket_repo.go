package repository

import (
	"context"
	"errors"
	"time"

	"confstay/internal/domain"

	"gorm.io/gorm"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

type ticketModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	EnrollmentID int64     `gorm:"column:enrollment_id"`
	TicketTypeID int64     `gorm:"column:ticket_type_id"`
	Status       string    `gorm:"column:status"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (ticketModel) TableName() string { return "tickets" }

type ticketTypeModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	Name          string    `gorm:"column:name"`
	Price         float64   `gorm:"column:price"`
	IsRemote      bool      `gorm:"column:is_remote"`
	IncludesHotel bool      `gorm:"column:includes_hotel"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (ticketTypeModel) TableName() string { return "ticket_types" }

func toDomainTicketType(m ticketTypeModel) *domain.TicketType {
	return &domain.TicketType{
		ID:            m.ID,
		Name:          m.Name,
		Price:         m.Price,
		IsRemote:      m.IsRemote,
		IncludesHotel: m.IncludesHotel,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toDomainTicket(m ticketModel, tt *domain.TicketType) *domain.Ticket {
	return &domain.Ticket{
		ID:           m.ID,
		EnrollmentID: m.EnrollmentID,
		TicketTypeID: m.TicketTypeID,
		Status:       domain.TicketStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		TicketType:   tt,
	}
}

// GetByEnrollmentID returns the enrollment's ticket with its type attached,
// or nil when the enrollment has no ticket yet.
func (r *TicketRepository) GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error) {
	var m ticketModel
	tx := r.db.WithContext(ctx).Where("enrollment_id = ?", enrollmentID).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}

	var tt ticketTypeModel
	tx = r.db.WithContext(ctx).First(&tt, m.TicketTypeID)
	if tx.Error != nil {
		return nil, tx.Error
	}

	return toDomainTicket(m, toDomainTicketType(tt)), nil
}

func (r *TicketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	m := ticketModel{
		EnrollmentID: t.EnrollmentID,
		TicketTypeID: t.TicketTypeID,
		Status:       string(t.Status),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}

	var tt ticketTypeModel
	if err := r.db.WithContext(ctx).First(&tt, m.TicketTypeID).Error; err != nil {
		return err
	}

	*t = *toDomainTicket(m, toDomainTicketType(tt))
	return nil
}

func (r *TicketRepository) GetTypeByID(ctx context.Context, id int64) (*domain.TicketType, error) {
	var m ticketTypeModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainTicketType(m), nil
}

func (r *TicketRepository) ListTypes(ctx context.Context) ([]domain.TicketType, error) {
	var rows []ticketTypeModel
	tx := r.db.WithContext(ctx).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.TicketType, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainTicketType(m))
	}
	return out, nil
}
