package api

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse is a bare confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// UploadResponse confirms a stored image and echoes its generated id.
type UploadResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse carries a minted session token. Register includes the
// message; login omits it.
type AuthResponse struct {
	Message  string `json:"message,omitempty"`
	Token    string `json:"token"`
	Username string `json:"username"`
}

// BookingCreateRequest is the body of POST /bookings. Guests and
// PromoCode are pointers so missing fields are distinguishable from zero
// values during validation.
type BookingCreateRequest struct {
	CheckinDate  string `json:"checkin_date"`
	CheckoutDate string `json:"checkout_date"`
	Guests       *int   `json:"guests"`
	PromoCode    *bool  `json:"promo_code"`
}

// BookingCreateResponse confirms a stored reservation.
type BookingCreateResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
