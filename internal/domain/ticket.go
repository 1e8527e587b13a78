package domain

import "time"

type TicketStatus string

const (
	TicketReserved TicketStatus = "RESERVED"
	TicketPaid     TicketStatus = "PAID"
)

// TicketType describes a class of admission: remote attendance or in person,
// with or without a hotel stay included.
type TicketType struct {
	ID            int64     `json:"id" gorm:"column:id;primaryKey"`
	Name          string    `json:"name" validate:"required" gorm:"column:name"`
	Price         float64   `json:"price" validate:"gte=0" gorm:"column:price"`
	IsRemote      bool      `json:"is_remote" gorm:"column:is_remote"`
	IncludesHotel bool      `json:"includes_hotel" gorm:"column:includes_hotel"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"column:updated_at"`
}

type Ticket struct {
	ID           int64        `json:"id" gorm:"column:id;primaryKey"`
	EnrollmentID int64        `json:"enrollment_id" validate:"required" gorm:"column:enrollment_id;uniqueIndex"`
	TicketTypeID int64        `json:"ticket_type_id" validate:"required" gorm:"column:ticket_type_id"`
	Status       TicketStatus `json:"status" gorm:"column:status"`
	CreatedAt    time.Time    `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time    `json:"updated_at" gorm:"column:updated_at"`

	TicketType *TicketType `json:"ticket_type,omitempty" gorm:"foreignKey:TicketTypeID"`
}
