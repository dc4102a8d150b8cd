package repository

import (
	"context"
	"fmt"

	"lcm-booking/internal/data/entity"
	"lcm-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ServiceRepository interface {
	FindAll(ctx context.Context) ([]*entity.Service, error)
	// FindByIDs resolves catalog entries for the given ids. Unmatched ids are
	// silently dropped, not treated as an error.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Service, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, services []*entity.Service) error
}

type serviceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceRepository(db database.PgxIface, log *zap.Logger) ServiceRepository {
	return &serviceRepository{
		db:  db,
		log: log.With(zap.String("repository", "service")),
	}
}

func (r *serviceRepository) FindAll(ctx context.Context) ([]*entity.Service, error) {
	query := `
		SELECT id, category, name, price_pence, duration_min
		FROM services
		ORDER BY category, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find services", zap.Error(err))
		return nil, fmt.Errorf("find services: %w", err)
	}
	defer rows.Close()

	var services []*entity.Service
	for rows.Next() {
		var service entity.Service
		err := rows.Scan(
			&service.ID,
			&service.Category,
			&service.Name,
			&service.PricePence,
			&service.DurationMin,
		)
		if err != nil {
			r.log.Error("Failed to scan service row", zap.Error(err))
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, &service)
	}

	return services, nil
}

func (r *serviceRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Service, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, category, name, price_pence, duration_min
		FROM services
		WHERE id = ANY($1)
		ORDER BY category, id
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find services by IDs",
			zap.Error(err),
			zap.Int("id_count", len(ids)),
		)
		return nil, fmt.Errorf("find services by IDs: %w", err)
	}
	defer rows.Close()

	var services []*entity.Service
	for rows.Next() {
		var service entity.Service
		err := rows.Scan(
			&service.ID,
			&service.Category,
			&service.Name,
			&service.PricePence,
			&service.DurationMin,
		)
		if err != nil {
			r.log.Error("Failed to scan service row", zap.Error(err))
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, &service)
	}

	return services, nil
}

func (r *serviceRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM services`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count services", zap.Error(err))
		return 0, fmt.Errorf("count services: %w", err)
	}

	return count, nil
}

func (r *serviceRepository) CreateBatch(ctx context.Context, services []*entity.Service) error {
	query := `
		INSERT INTO services (id, category, name, price_pence, duration_min)
		VALUES ($1, $2, $3, $4, $5)
	`

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, service := range services {
		_, err := tx.Exec(ctx, query,
			service.ID,
			service.Category,
			service.Name,
			service.PricePence,
			service.DurationMin,
		)
		if err != nil {
			r.log.Error("Failed to insert service",
				zap.Error(err),
				zap.String("name", service.Name),
			)
			return fmt.Errorf("insert service %s: %w", service.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}

	return nil
}
