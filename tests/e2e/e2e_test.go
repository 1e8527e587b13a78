package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"confstay/internal/database"
	"confstay/internal/domain"
	"confstay/internal/middleware"
	"confstay/internal/modules/auth"
	"confstay/internal/modules/booking"
	"confstay/internal/modules/catalog"
	"confstay/internal/modules/enrollment"
	jwtsvc "confstay/internal/pkg/jwt"
	"confstay/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type TestSuite struct {
	router     *gin.Engine
	db         *gorm.DB
	jwtService *jwtsvc.Service
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func setupTestSuite(t *testing.T) *TestSuite {
	// per-test named memory DB; shared cache so pooled connections see the
	// same schema
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Connect(dsn)
	require.NoError(t, err, "Failed to connect to test database")

	models := []interface{}{
		&domain.User{},
		&domain.Enrollment{},
		&domain.TicketType{},
		&domain.Ticket{},
		&domain.Hotel{},
		&domain.Room{},
		&domain.Booking{},
	}
	for _, model := range models {
		err := db.AutoMigrate(model)
		require.NoError(t, err, fmt.Sprintf("Failed to migrate %T", model))
	}

	userRepo := repository.NewUserRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, jwtService))
	enrollmentHandler := enrollment.NewHandler(enrollment.NewService(enrollmentRepo, ticketRepo))
	catalogHandler := catalog.NewHandler(catalog.NewService(hotelRepo, roomRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, roomRepo, enrollmentRepo, ticketRepo))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	authHandler.RegisterPublicRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(jwtService))
	{
		enrollmentHandler.RegisterRoutes(protected)
		catalogHandler.RegisterRoutes(protected)
		bookingHandler.RegisterRoutes(protected)
	}

	return &TestSuite{router: r, db: db, jwtService: jwtService}
}

func (s *TestSuite) request(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, TestResponse) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp TestResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

// createAttendee signs up a user and returns the user id and a valid token.
func (s *TestSuite) createAttendee(t *testing.T, email string) (int64, string) {
	w, resp := s.request(t, "POST", "/api/v1/auth/sign-up", "", gin.H{
		"name":     "Test Attendee",
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	user := resp.Data["user"].(map[string]interface{})
	return int64(user["id"].(float64)), resp.Data["token"].(string)
}

func (s *TestSuite) createTicketType(t *testing.T, isRemote, includesHotel bool) domain.TicketType {
	tt := domain.TicketType{Name: "type", Price: 100, IsRemote: isRemote, IncludesHotel: includesHotel}
	require.NoError(t, s.db.Create(&tt).Error)
	return tt
}

func (s *TestSuite) createPaidHotelTicket(t *testing.T, userID int64) {
	s.createTicketChain(t, userID, domain.TicketPaid, false, true)
}

func (s *TestSuite) createTicketChain(t *testing.T, userID int64, status domain.TicketStatus, isRemote, includesHotel bool) {
	e := domain.Enrollment{UserID: userID, Name: "Test Attendee"}
	require.NoError(t, s.db.Create(&e).Error)

	tt := s.createTicketType(t, isRemote, includesHotel)
	ticket := domain.Ticket{EnrollmentID: e.ID, TicketTypeID: tt.ID, Status: status}
	require.NoError(t, s.db.Create(&ticket).Error)
}

func (s *TestSuite) createHotelRoom(t *testing.T, capacity int) domain.Room {
	hotel := domain.Hotel{Name: "Grand Plaza"}
	require.NoError(t, s.db.Create(&hotel).Error)

	room := domain.Room{HotelID: hotel.ID, Name: "101", Capacity: capacity}
	require.NoError(t, s.db.Create(&room).Error)
	return room
}

func TestBooking_RequiresAuth(t *testing.T) {
	s := setupTestSuite(t)

	w, _ := s.request(t, "GET", "/api/v1/booking", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = s.request(t, "POST", "/api/v1/booking", "not-a-jwt", gin.H{"room_id": 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBooking_CreateFlow(t *testing.T) {
	s := setupTestSuite(t)

	userID, token := s.createAttendee(t, "ana@test.com")
	s.createPaidHotelTicket(t, userID)
	room := s.createHotelRoom(t, 1)

	// create succeeds and returns a fresh booking id
	w, resp := s.request(t, "POST", "/api/v1/booking", token, gin.H{"room_id": room.ID})
	require.Equal(t, http.StatusOK, w.Code)
	bookingID := int64(resp.Data["bookingId"].(float64))
	assert.Greater(t, bookingID, int64(0))

	// the room now shows one occupant
	var cnt int64
	s.db.Table("bookings").Where("room_id = ?", room.ID).Count(&cnt)
	assert.Equal(t, int64(1), cnt)

	// read returns the booking with its room
	w, resp = s.request(t, "GET", "/api/v1/booking", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(bookingID), resp.Data["id"])
	gotRoom := resp.Data["room"].(map[string]interface{})
	assert.Equal(t, float64(room.ID), gotRoom["id"])
	assert.Equal(t, float64(1), gotRoom["occupants"])

	// a second create for the same user is forbidden
	w, resp = s.request(t, "POST", "/api/v1/booking", token, gin.H{"room_id": room.ID})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", resp.Error.Code)
}

func TestBooking_CreateWithoutEnrollment(t *testing.T) {
	s := setupTestSuite(t)

	_, token := s.createAttendee(t, "ana@test.com")
	room := s.createHotelRoom(t, 1)

	w, _ := s.request(t, "POST", "/api/v1/booking", token, gin.H{"room_id": room.ID})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBooking_CreateWithRemoteTicket(t *testing.T) {
	s := setupTestSuite(t)

	userID, token := s.createAttendee(t, "ana@test.com")
	s.createTicketChain(t, userID, domain.TicketPaid, true, false)
	room := s.createHotelRoom(t, 1)

	w, _ := s.request(t, "POST", "/api/v1/booking", token, gin.H{"room_id": room.ID})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBooking_CreateWithReservedTicket(t *testing.T) {
	s := setupTestSuite(t)

	userID, token := s.createAttendee(t, "ana@test.com")
	s.createTicketChain(t, userID, domain.TicketReserved, false, true)
	room := s.createHotelRoom(t, 1)

	w, _ := s.request(t, "POST", "/api/v1/booking", token, gin.H{"room_id": room.ID})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBooking_CreateRoomNotFound(t *testing.T) {
	s := setupTestSuite(t)

	userID, token := s.createAttendee(t, "ana@test.com")
	s.createPaidHotelTicket(t, userID)

	w, _ := s.request(t, "POST", "/api/v1/booking", token, gin.H{"room_id": 999999})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBooking_CreateRoomFull(t *testing.T) {
	s := setupTestSuite(t)

	userID, token := s.createAttendee(t, "ana@test.com")
	s.createPaidHotelTicket(t, userID)
	room := s.createHotelRoom(t, 2)

	// two other attendees already occupy the room
	for i := 0; i < 2; i++ {
		otherID, _ := s.createAttendee(t, fmt.Sprintf("other%d@test.com", i))
		require.NoError(t, s.db.Create(&domain.Booking{UserID: otherID, RoomID: room.ID}).Error)
	}

	w, _ := s.request(t, "POST", "/api/v1/booking", token, gin.H{"room_id": room.ID})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBooking_GetWithoutBooking(t *testing.T) {
	s := setupTestSuite(t)

	_, token := s.createAttendee(t, "ana@test.com")

	w, _ := s.request(t, "GET", "/api/v1/booking", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBooking_ChangeFlow(t *testing.T) {
	s := setupTestSuite(t)

	userID, token := s.createAttendee(t, "ana@test.com")
	s.createPaidHotelTicket(t, userID)
	first := s.createHotelRoom(t, 1)

	second := domain.Room{HotelID: first.HotelID, Name: "102", Capacity: 2}
	require.NoError(t, s.db.Create(&second).Error)

	w, resp := s.request(t, "POST", "/api/v1/booking", token, gin.H{"room_id": first.ID})
	require.Equal(t, http.StatusOK, w.Code)
	bookingID := int64(resp.Data["bookingId"].(float64))

	// move to the second room
	w, resp = s.request(t, "PUT", fmt.Sprintf("/api/v1/booking/%d", bookingID), token, gin.H{"room_id": second.ID})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(bookingID), resp.Data["bookingId"])

	var moved domain.Booking
	require.NoError(t, s.db.First(&moved, bookingID).Error)
	assert.Equal(t, second.ID, moved.RoomID)
}

func TestBooking_ChangeToMissingRoom(t *testing.T) {
	s := setupTestSuite(t)

	userID, token := s.createAttendee(t, "ana@test.com")
	s.createPaidHotelTicket(t, userID)
	room := s.createHotelRoom(t, 1)

	w, resp := s.request(t, "POST", "/api/v1/booking", token, gin.H{"room_id": room.ID})
	require.Equal(t, http.StatusOK, w.Code)
	bookingID := int64(resp.Data["bookingId"].(float64))

	w, _ = s.request(t, "PUT", fmt.Sprintf("/api/v1/booking/%d", bookingID), token, gin.H{"room_id": 999999})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBooking_ChangeToFullRoom(t *testing.T) {
	s := setupTestSuite(t)

	userID, token := s.createAttendee(t, "ana@test.com")
	s.createPaidHotelTicket(t, userID)
	first := s.createHotelRoom(t, 1)

	full := domain.Room{HotelID: first.HotelID, Name: "103", Capacity: 2}
	require.NoError(t, s.db.Create(&full).Error)
	for i := 0; i < 2; i++ {
		otherID, _ := s.createAttendee(t, fmt.Sprintf("other%d@test.com", i))
		require.NoError(t, s.db.Create(&domain.Booking{UserID: otherID, RoomID: full.ID}).Error)
	}

	w, resp := s.request(t, "POST", "/api/v1/booking", token, gin.H{"room_id": first.ID})
	require.Equal(t, http.StatusOK, w.Code)
	bookingID := int64(resp.Data["bookingId"].(float64))

	w, _ = s.request(t, "PUT", fmt.Sprintf("/api/v1/booking/%d", bookingID), token, gin.H{"room_id": full.ID})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBooking_ChangeUnknownBooking(t *testing.T) {
	s := setupTestSuite(t)

	userID, token := s.createAttendee(t, "ana@test.com")
	s.createPaidHotelTicket(t, userID)
	room := s.createHotelRoom(t, 3)

	w, _ := s.request(t, "PUT", "/api/v1/booking/424242", token, gin.H{"room_id": room.ID})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestEnrollmentAndTicketFlow(t *testing.T) {
	s := setupTestSuite(t)

	_, token := s.createAttendee(t, "ana@test.com")
	tt := s.createTicketType(t, false, true)

	// no enrollment yet
	w, _ := s.request(t, "GET", "/api/v1/enrollments", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// buying a ticket before enrolling is a 404
	w, _ = s.request(t, "POST", "/api/v1/tickets", token, gin.H{"ticket_type_id": tt.ID})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.request(t, "POST", "/api/v1/enrollments", token, gin.H{"name": "Ana"})
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := s.request(t, "POST", "/api/v1/tickets", token, gin.H{"ticket_type_id": tt.ID})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, string(domain.TicketReserved), resp.Data["status"])

	w, resp = s.request(t, "GET", "/api/v1/tickets", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	ticketType := resp.Data["ticket_type"].(map[string]interface{})
	assert.Equal(t, true, ticketType["includes_hotel"])
}

func TestCatalog_HotelWithRooms(t *testing.T) {
	s := setupTestSuite(t)

	userID, token := s.createAttendee(t, "ana@test.com")
	s.createPaidHotelTicket(t, userID)
	room := s.createHotelRoom(t, 2)

	w, resp := s.request(t, "POST", "/api/v1/booking", token, gin.H{"room_id": room.ID})
	require.Equal(t, http.StatusOK, w.Code)
	_ = resp

	w, resp = s.request(t, "GET", fmt.Sprintf("/api/v1/hotels/%d", room.HotelID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	hotel := resp.Data["hotel"].(map[string]interface{})
	rooms := hotel["rooms"].([]interface{})
	require.Len(t, rooms, 1)
	assert.Equal(t, float64(1), rooms[0].(map[string]interface{})["occupants"])
}
