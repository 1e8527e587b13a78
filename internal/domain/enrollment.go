package domain

import "time"

// Enrollment is a user's registration record for the conference.
// Its existence is what makes the user eligible to buy a ticket.
type Enrollment struct {
	ID        int64      `json:"id" gorm:"column:id;primaryKey"`
	UserID    int64      `json:"user_id" validate:"required" gorm:"column:user_id;uniqueIndex"`
	Name      string     `json:"name" validate:"required" gorm:"column:name"`
	CPF       string     `json:"cpf,omitempty" gorm:"column:cpf"`
	Phone     string     `json:"phone,omitempty" gorm:"column:phone"`
	BirthDate *time.Time `json:"birth_date,omitempty" gorm:"column:birth_date"`
	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"column:updated_at"`
}
