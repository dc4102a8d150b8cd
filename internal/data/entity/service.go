package entity

import "github.com/google/uuid"

// Service is a catalog entry. Seeded once, never mutated by the booking flow.
type Service struct {
	ID          uuid.UUID `db:"id"`
	Category    string    `db:"category"`
	Name        string    `db:"name"`
	PricePence  int       `db:"price_pence"`  // minor currency unit
	DurationMin int       `db:"duration_min"` // minutes
}
