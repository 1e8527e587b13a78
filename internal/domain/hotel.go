package domain

import "time"

type Hotel struct {
	ID        int64     `json:"id" gorm:"column:id;primaryKey"`
	Name      string    `json:"name" validate:"required" gorm:"column:name"`
	Image     string    `json:"image,omitempty" gorm:"column:image"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`

	Rooms []Room `json:"rooms,omitempty" gorm:"foreignKey:HotelID"`
}

type Room struct {
	ID        int64     `json:"id" gorm:"column:id;primaryKey"`
	HotelID   int64     `json:"hotel_id" validate:"required" gorm:"column:hotel_id"`
	Name      string    `json:"name" validate:"required" gorm:"column:name"`
	Capacity  int       `json:"capacity" validate:"gte=0" gorm:"column:capacity"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`

	// Occupants is the number of bookings currently pointing at the room.
	// Populated by the repository, never stored.
	Occupants int `json:"occupants" gorm:"-"`
}
