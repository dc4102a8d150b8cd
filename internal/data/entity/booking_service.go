package entity

import "github.com/google/uuid"

// BookingService links a booking to one of its selected services.
type BookingService struct {
	BaseSimple
	BookingID uuid.UUID `db:"booking_id"`
	ServiceID uuid.UUID `db:"service_id"`
}
