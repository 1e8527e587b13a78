package repository

import (
	"context"
	"errors"
	"time"

	"confstay/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	HotelID   int64     `gorm:"column:hotel_id"`
	Name      string    `gorm:"column:name"`
	Capacity  int       `gorm:"column:capacity"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
	Occupants int       `gorm:"column:occupants;->"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:        m.ID,
		HotelID:   m.HotelID,
		Name:      m.Name,
		Capacity:  m.Capacity,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Occupants: m.Occupants,
	}
}

const roomWithOccupantsSelect = `rooms.*, (SELECT COUNT(1) FROM bookings b WHERE b.room_id = rooms.id) AS occupants`

// GetByID returns the room with its current occupant count, or nil when the
// room does not exist.
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).
		Table("rooms").
		Select(roomWithOccupantsSelect).
		Where("rooms.id = ?", id).
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	var rows []roomModel
	tx := r.db.WithContext(ctx).
		Table("rooms").
		Select(roomWithOccupantsSelect).
		Where("rooms.hotel_id = ?", hotelID).
		Order("rooms.id").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Room, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}
