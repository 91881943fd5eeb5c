package server

import (
	"net/http"

	"innkeep/internal/api"
)

func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	var req api.BookingCreateRequest
	if !s.decodeJSONReq(w, r, &req) {
		return
	}

	booking, err := s.bookings.Create(r.Context(), BookingInput{
		CheckinDate:  req.CheckinDate,
		CheckoutDate: req.CheckoutDate,
		Guests:       req.Guests,
		PromoCode:    req.PromoCode,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, api.BookingCreateResponse{Message: "Booking created successfully", ID: booking.ID})
}

func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := s.bookings.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, bookings)
}
