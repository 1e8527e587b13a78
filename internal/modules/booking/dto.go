package booking

type CreateBookingRequest struct {
	RoomID int64 `json:"room_id" binding:"required,gt=0"`
}

type ChangeBookingRequest struct {
	RoomID int64 `json:"room_id" binding:"required,gt=0"`
}
