package server

import (
	"context"
	"strings"
	"time"

	"innkeep/internal/models"
	"innkeep/internal/store"
)

// BookingService stores and lists reservation records.
type BookingService struct {
	bookings store.BookingStore
}

// BookingInput describes one reservation request. Guests and PromoCode
// are pointers so absent fields fail validation instead of defaulting.
type BookingInput struct {
	CheckinDate  string
	CheckoutDate string
	Guests       *int
	PromoCode    *bool
}

// NewBookingService constructs a BookingService.
func NewBookingService(bookings store.BookingStore) *BookingService {
	return &BookingService{bookings: bookings}
}

// Create validates the reservation and inserts it.
func (s *BookingService) Create(ctx context.Context, in BookingInput) (*models.Booking, error) {
	checkin := strings.TrimSpace(in.CheckinDate)
	checkout := strings.TrimSpace(in.CheckoutDate)
	if checkin == "" || checkout == "" || in.Guests == nil || in.PromoCode == nil || *in.Guests <= 0 {
		return nil, validationError("Invalid data")
	}

	b := &models.Booking{
		CheckinDate:  checkin,
		CheckoutDate: checkout,
		Guests:       *in.Guests,
		PromoCode:    *in.PromoCode,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.bookings.CreateBooking(ctx, b); err != nil {
		return nil, storageError("Database error", err)
	}
	return b, nil
}

// List returns all reservations.
func (s *BookingService) List(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return nil, storageError("Database error", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}
