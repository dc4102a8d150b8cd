package repository

import (
	"lcm-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Service ServiceRepository
	Booking BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Service: NewServiceRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}
