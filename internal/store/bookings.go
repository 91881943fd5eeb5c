package store

import (
	"context"
	"fmt"
	"time"

	"innkeep/internal/models"
)

// CreateBooking inserts a reservation row and fills in the generated id.
func (s *Store) CreateBooking(ctx context.Context, b *models.Booking) error {
	if b == nil {
		return fmt.Errorf("booking is required")
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}

	promo := 0
	if b.PromoCode {
		promo = 1
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO bookings (checkin_date, checkout_date, guests, promo_code, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, b.CheckinDate, b.CheckoutDate, b.Guests, promo, dbFormatTime(b.CreatedAt))
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = id
	return nil
}

// ListBookings returns all reservation rows.
func (s *Store) ListBookings(ctx context.Context) ([]models.Booking, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, checkin_date, checkout_date, guests, promo_code, created_at
		FROM bookings
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0)
	for rows.Next() {
		var b models.Booking
		var promo int
		var createdAt string
		if err := rows.Scan(&b.ID, &b.CheckinDate, &b.CheckoutDate, &b.Guests, &promo, &createdAt); err != nil {
			return nil, err
		}
		b.PromoCode = promo != 0
		b.CreatedAt = dbParseTime(createdAt)
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}
