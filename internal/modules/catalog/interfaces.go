package catalog

import (
	"context"

	"confstay/internal/domain"
)

type HotelRepository interface {
	List(ctx context.Context) ([]domain.Hotel, error)
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

type RoomRepository interface {
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error)
}
