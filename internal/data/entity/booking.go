package entity

import "time"

// Booking is create-only. Totals and end time are computed at creation and
// stored, so later catalog changes never alter past bookings.
type Booking struct {
	BaseSimple
	CustomerName     string    `db:"customer_name"`
	Email            *string   `db:"email"`
	Phone            *string   `db:"phone"`
	Address          string    `db:"address"`
	Postcode         string    `db:"postcode"`
	Date             time.Time `db:"booking_date"`
	StartMin         int       `db:"start_min"` // minutes since midnight
	EndMin           int       `db:"end_min"`
	Notes            *string   `db:"notes"`
	TotalPricePence  int       `db:"total_price_pence"`
	TotalDurationMin int       `db:"total_duration_min"`
}
