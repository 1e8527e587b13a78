package main

import (
	"fmt"
	"log"

	"confstay/internal/database"
	"confstay/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	db, err := database.Connect("confstay.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	// AutoMigrate to ensure schema is up to date
	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Enrollment{},
		&domain.TicketType{},
		&domain.Ticket{},
		&domain.Hotel{},
		&domain.Room{},
		&domain.Booking{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM hotels")
	db.Exec("DELETE FROM tickets")
	db.Exec("DELETE FROM ticket_types")
	db.Exec("DELETE FROM enrollments")
	db.Exec("DELETE FROM users")

	// ================== TICKET TYPES ==================
	log.Println("Creating ticket types...")

	inPersonHotel := domain.TicketType{Name: "In person + hotel", Price: 600, IsRemote: false, IncludesHotel: true}
	inPersonOnly := domain.TicketType{Name: "In person", Price: 250, IsRemote: false, IncludesHotel: false}
	remote := domain.TicketType{Name: "Remote", Price: 100, IsRemote: true, IncludesHotel: false}
	db.Create(&inPersonHotel)
	db.Create(&inPersonOnly)
	db.Create(&remote)

	// ================== HOTELS ==================
	log.Println("Creating hotels...")

	hotels := []struct {
		name  string
		rooms []domain.Room
	}{
		{
			name: "Grand Plaza",
			rooms: []domain.Room{
				{Name: "101", Capacity: 1},
				{Name: "102", Capacity: 2},
				{Name: "103", Capacity: 3},
			},
		},
		{
			name: "Riverside Inn",
			rooms: []domain.Room{
				{Name: "201", Capacity: 2},
				{Name: "202", Capacity: 2},
			},
		},
	}

	for _, h := range hotels {
		hotel := domain.Hotel{Name: h.name}
		db.Create(&hotel)
		for _, r := range h.rooms {
			r.HotelID = hotel.ID
			db.Create(&r)
		}
	}

	// ================== USERS ==================
	log.Println("Creating users...")

	for i := 1; i <= 3; i++ {
		hash, _ := bcrypt.GenerateFromPassword([]byte("attendee123"), bcrypt.DefaultCost)
		user := domain.User{
			Email:        fmt.Sprintf("attendee%d@confstay.io", i),
			PasswordHash: string(hash),
			Name:         fmt.Sprintf("Attendee %d", i),
		}
		db.Create(&user)

		enrollment := domain.Enrollment{
			UserID: user.ID,
			Name:   user.Name,
			Phone:  fmt.Sprintf("+55 11 9876-54%02d", i),
		}
		db.Create(&enrollment)

		// first two attendees hold a paid hotel ticket, the third stays remote
		ticket := domain.Ticket{
			EnrollmentID: enrollment.ID,
			TicketTypeID: inPersonHotel.ID,
			Status:       domain.TicketPaid,
		}
		if i == 3 {
			ticket.TicketTypeID = remote.ID
		}
		db.Create(&ticket)

		log.Printf("Attendee created: %s / attendee123", user.Email)
	}

	log.Println("Seed complete.")
}
