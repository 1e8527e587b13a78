package repository

import (
	"context"
	"errors"
	"time"

	"confstay/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrRoomFull is returned when the transactional occupancy re-check finds the
// room at capacity. The service-level pre-check is advisory only; this is the
// one that holds under concurrent writers.
var ErrRoomFull = errors.New("room is at capacity")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id"`
	RoomID    int64     `gorm:"column:room_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:        m.ID,
		UserID:    m.UserID,
		RoomID:    m.RoomID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// GetByUserID returns the user's booking with its room attached, or nil when
// the user holds none. Existence is what "active" means here.
func (r *BookingRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}

	b := toDomainBooking(m)

	var room roomModel
	tx = r.db.WithContext(ctx).
		Table("rooms").
		Select(roomWithOccupantsSelect).
		Where("rooms.id = ?", m.RoomID).
		First(&room)
	if tx.Error != nil {
		return nil, tx.Error
	}
	b.Room = toDomainRoom(room)

	return b, nil
}

// Create inserts the booking inside a transaction that re-reads the room and
// re-counts its occupants, so two concurrent inserts cannot both pass the
// capacity check. Under postgres the room row is read FOR UPDATE; sqlite
// serializes writers on its own.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		room, occupants, err := lockRoomWithOccupants(tx, b.RoomID)
		if err != nil {
			return err
		}
		if occupants >= int64(room.Capacity) {
			return ErrRoomFull
		}

		m := bookingModel{UserID: b.UserID, RoomID: b.RoomID}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}

		*b = *toDomainBooking(m)
		return nil
	})
}

// UpdateRoom moves the booking to another room under the same transactional
// occupancy guard. Returns nil when no row matches the booking id and user —
// the caller decides what a miss means.
func (r *BookingRepository) UpdateRoom(ctx context.Context, userID, roomID, bookingID int64) (*domain.Booking, error) {
	var updated *domain.Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		room, occupants, err := lockRoomWithOccupants(tx, roomID)
		if err != nil {
			return err
		}
		if occupants >= int64(room.Capacity) {
			return ErrRoomFull
		}

		res := tx.Model(&bookingModel{}).
			Where("id = ? AND user_id = ?", bookingID, userID).
			Updates(map[string]any{
				"room_id":    roomID,
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		var m bookingModel
		if err := tx.First(&m, bookingID).Error; err != nil {
			return err
		}
		updated = toDomainBooking(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func lockRoomWithOccupants(tx *gorm.DB, roomID int64) (*roomModel, int64, error) {
	q := tx
	if tx.Dialector.Name() == "postgres" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var room roomModel
	if err := q.Table("rooms").Where("rooms.id = ?", roomID).First(&room).Error; err != nil {
		return nil, 0, err
	}

	var occupants int64
	if err := tx.Model(&bookingModel{}).Where("room_id = ?", roomID).Count(&occupants).Error; err != nil {
		return nil, 0, err
	}
	return &room, occupants, nil
}
