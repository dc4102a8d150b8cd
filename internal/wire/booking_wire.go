package wire

import (
	"lcm-booking/internal/adaptor"
	"lcm-booking/pkg/middleware"
	"lcm-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /bookings - Create a booking (public, validated)
	r.Post("/bookings", bookingHandler.CreateBooking)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminKey(config.Admin, log))

		// GET /bookings?date=YYYY-MM-DD - list bookings (admin)
		r.Get("/bookings", bookingHandler.ListBookings)
	})
}
