package repository

import (
	"context"
	"fmt"
	"time"

	"lcm-booking/internal/data/entity"
	"lcm-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// CreateWithServices persists the booking and its service links in a
	// single transaction: both are visible or neither is.
	CreateWithServices(ctx context.Context, booking *entity.Booking, serviceIDs []uuid.UUID) error
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	FindByDate(ctx context.Context, date time.Time) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, customer_name, email, phone, address, postcode,
	booking_date, start_min, end_min, notes, total_price_pence, total_duration_min, created_at`

func (r *bookingRepository) CreateWithServices(ctx context.Context, booking *entity.Booking, serviceIDs []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertBooking := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err = tx.Exec(ctx, insertBooking,
		booking.ID,
		booking.CustomerName,
		booking.Email,
		booking.Phone,
		booking.Address,
		booking.Postcode,
		booking.Date,
		booking.StartMin,
		booking.EndMin,
		booking.Notes,
		booking.TotalPricePence,
		booking.TotalDurationMin,
		booking.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	insertLink := `
		INSERT INTO booking_services (id, booking_id, service_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	for _, serviceID := range serviceIDs {
		_, err := tx.Exec(ctx, insertLink,
			uuid.New(),
			booking.ID,
			serviceID,
			booking.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create booking service link",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
				zap.String("service_id", serviceID.String()),
			)
			return fmt.Errorf("create booking service link: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking transaction: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY booking_date, start_min
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find bookings", zap.Error(err))
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows, r.log)
}

func (r *bookingRepository) FindByDate(ctx context.Context, date time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE booking_date = $1
		ORDER BY booking_date, start_min
	`

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		r.log.Error("Failed to find bookings by date",
			zap.Error(err),
			zap.Time("date", date),
		)
		return nil, fmt.Errorf("find bookings by date: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows, r.log)
}

type bookingRows interface {
	Next() bool
	Scan(dest ...any) error
}

func scanBookings(rows bookingRows, log *zap.Logger) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.CustomerName,
			&booking.Email,
			&booking.Phone,
			&booking.Address,
			&booking.Postcode,
			&booking.Date,
			&booking.StartMin,
			&booking.EndMin,
			&booking.Notes,
			&booking.TotalPricePence,
			&booking.TotalDurationMin,
			&booking.CreatedAt,
		)
		if err != nil {
			log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}
