package repository

import (
	"context"
	"errors"
	"time"

	"confstay/internal/domain"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

type enrollmentModel struct {
	ID        int64      `gorm:"column:id;primaryKey"`
	UserID    int64      `gorm:"column:user_id"`
	Name      string     `gorm:"column:name"`
	CPF       *string    `gorm:"column:cpf"`
	Phone     *string    `gorm:"column:phone"`
	BirthDate *time.Time `gorm:"column:birth_date"`
	CreatedAt time.Time  `gorm:"column:created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at"`
}

func (enrollmentModel) TableName() string { return "enrollments" }

func toDomainEnrollment(m enrollmentModel) *domain.Enrollment {
	var cpf, phone string
	if m.CPF != nil {
		cpf = *m.CPF
	}
	if m.Phone != nil {
		phone = *m.Phone
	}

	return &domain.Enrollment{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		CPF:       cpf,
		Phone:     phone,
		BirthDate: m.BirthDate,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toEnrollmentModel(e *domain.Enrollment) enrollmentModel {
	var cpf, phone *string
	if e.CPF != "" {
		v := e.CPF
		cpf = &v
	}
	if e.Phone != "" {
		v := e.Phone
		phone = &v
	}

	return enrollmentModel{
		ID:        e.ID,
		UserID:    e.UserID,
		Name:      e.Name,
		CPF:       cpf,
		Phone:     phone,
		BirthDate: e.BirthDate,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (r *EnrollmentRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error) {
	var m enrollmentModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainEnrollment(m), nil
}

func (r *EnrollmentRepository) Create(ctx context.Context, e *domain.Enrollment) error {
	m := toEnrollmentModel(e)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainEnrollment(m)
	return nil
}

func (r *EnrollmentRepository) Update(ctx context.Context, e *domain.Enrollment) error {
	m := toEnrollmentModel(e)
	m.UpdatedAt = time.Now()
	tx := r.db.WithContext(ctx).Model(&enrollmentModel{}).Where("id = ?", m.ID).Updates(map[string]any{
		"name":       m.Name,
		"cpf":        m.CPF,
		"phone":      m.Phone,
		"birth_date": m.BirthDate,
		"updated_at": m.UpdatedAt,
	})
	if tx.Error != nil {
		return tx.Error
	}
	e.UpdatedAt = m.UpdatedAt
	return nil
}
