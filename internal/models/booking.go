package models

import "time"

// Booking is one room reservation record.
type Booking struct {
	ID           int64     `json:"id"`
	CheckinDate  string    `json:"checkin_date"`
	CheckoutDate string    `json:"checkout_date"`
	Guests       int       `json:"guests"`
	PromoCode    bool      `json:"promo_code"`
	CreatedAt    time.Time `json:"-"`
}
