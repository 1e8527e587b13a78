package catalog

import (
	"context"

	"confstay/internal/domain"
)

type Service struct {
	hotels HotelRepository
	rooms  RoomRepository
}

func NewService(hotels HotelRepository, rooms RoomRepository) *Service {
	return &Service{
		hotels: hotels,
		rooms:  rooms,
	}
}

func (s *Service) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	return s.hotels.List(ctx)
}

// GetHotel returns the hotel with its rooms, occupant counts included.
func (s *Service) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	hotel, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, ErrNotFound
	}

	rooms, err := s.rooms.ListByHotel(ctx, id)
	if err != nil {
		return nil, err
	}
	hotel.Rooms = rooms

	return hotel, nil
}
