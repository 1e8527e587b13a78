package domain

import "time"

// Booking assigns a user to a hotel room. A booking is "active" for as long as
// it exists; there is no cancellation or expiry state. The unique index on
// user_id backs the one-active-booking-per-user rule at the store.
type Booking struct {
	ID        int64     `json:"id" gorm:"column:id;primaryKey"`
	UserID    int64     `json:"user_id" validate:"required" gorm:"column:user_id;uniqueIndex:idx_one_booking_per_user"`
	RoomID    int64     `json:"room_id" validate:"required" gorm:"column:room_id"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Room *Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}
