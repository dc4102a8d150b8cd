package database

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS services (
		id UUID PRIMARY KEY,
		category TEXT NOT NULL,
		name TEXT NOT NULL,
		price_pence INT NOT NULL,
		duration_min INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		customer_name TEXT NOT NULL,
		email TEXT,
		phone TEXT,
		address TEXT NOT NULL,
		postcode TEXT NOT NULL,
		booking_date DATE NOT NULL,
		start_min INT NOT NULL,
		end_min INT NOT NULL,
		notes TEXT,
		total_price_pence INT NOT NULL,
		total_duration_min INT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS booking_services (
		id UUID PRIMARY KEY,
		booking_id UUID NOT NULL REFERENCES bookings(id),
		service_id UUID NOT NULL REFERENCES services(id),
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_date ON bookings (booking_date, start_min)`,
}

// EnsureSchema creates the tables on startup when they do not exist yet.
func EnsureSchema(ctx context.Context, db PgxIface) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
