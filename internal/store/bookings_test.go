package store

import (
	"testing"

	"innkeep/internal/models"
)

func TestBookingCreateAndList(t *testing.T) {
	st, ctx := openTestStore(t)

	first := &models.Booking{CheckinDate: "2026-09-01", CheckoutDate: "2026-09-05", Guests: 2, PromoCode: true}
	if err := st.CreateBooking(ctx, first); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if first.ID == 0 {
		t.Fatal("expected generated id")
	}

	second := &models.Booking{CheckinDate: "2026-10-10", CheckoutDate: "2026-10-12", Guests: 4}
	if err := st.CreateBooking(ctx, second); err != nil {
		t.Fatalf("create second: %v", err)
	}

	bookings, err := st.ListBookings(ctx)
	if err != nil {
		t.Fatalf("list bookings: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(bookings))
	}

	byID := map[int64]models.Booking{}
	for _, b := range bookings {
		byID[b.ID] = b
	}
	if got := byID[first.ID]; !got.PromoCode || got.Guests != 2 || got.CheckinDate != "2026-09-01" {
		t.Fatalf("unexpected first row: %+v", got)
	}
	if got := byID[second.ID]; got.PromoCode || got.Guests != 4 {
		t.Fatalf("unexpected second row: %+v", got)
	}
}
