package usecase

import (
	"context"
	"fmt"

	"lcm-booking/internal/data/entity"
	"lcm-booking/internal/data/repository"
	"lcm-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogService interface {
	ListServices(ctx context.Context) ([]*response.ServiceResponse, error)
	// Seed inserts the default catalog when the services table is empty.
	Seed(ctx context.Context) error
}

type catalogService struct {
	repo repository.ServiceRepository
	log  *zap.Logger
}

func NewCatalogService(repo repository.ServiceRepository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListServices(ctx context.Context) ([]*response.ServiceResponse, error) {
	services, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list services", zap.Error(err))
		return nil, fmt.Errorf("list services: %w", err)
	}

	result := make([]*response.ServiceResponse, len(services))
	for i, service := range services {
		result[i] = response.ServiceToResponse(service)
	}

	return result, nil
}

func (s *catalogService) Seed(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count services: %w", err)
	}

	if count > 0 {
		return nil
	}

	services := make([]*entity.Service, len(defaultCatalog))
	for i, seed := range defaultCatalog {
		services[i] = &entity.Service{
			ID:          uuid.New(),
			Category:    seed.category,
			Name:        seed.name,
			PricePence:  seed.pricePence,
			DurationMin: seed.durationMin,
		}
	}

	if err := s.repo.CreateBatch(ctx, services); err != nil {
		return fmt.Errorf("seed services: %w", err)
	}

	s.log.Info("Service catalog seeded", zap.Int("count", len(services)))
	return nil
}

type catalogSeed struct {
	category    string
	name        string
	pricePence  int
	durationMin int
}

// prices in pence, durations in minutes
var defaultCatalog = []catalogSeed{
	// Oven Cleaning
	{"Oven Cleaning", "Single oven clean", 5000, 90},
	{"Oven Cleaning", "Oven and grill", 7500, 120},
	{"Oven Cleaning", "Side by side single ovens", 9000, 120},
	{"Oven Cleaning", "Range oven", 12500, 150},
	{"Oven Cleaning", "Ceramic hob", 1000, 20},
	{"Oven Cleaning", "Gas hob 4 burner", 2000, 30},
	{"Oven Cleaning", "Extractor", 2000, 30},
	// Carpet Cleaning
	{"Carpet Cleaning", "1 carpet", 5000, 60},
	{"Carpet Cleaning", "2 carpets", 7000, 90},
	{"Carpet Cleaning", "3 carpets", 9000, 90},
	{"Carpet Cleaning", "4 carpets", 11000, 120},
	{"Carpet Cleaning", "5 carpets", 12500, 120},
	{"Carpet Cleaning", "Stairs & landing", 5000, 60},
	{"Carpet Cleaning", "Stairs & landing x2", 7500, 90},
	// Sofa Cleaning
	{"Sofa Cleaning", "Arm chair / love chair", 3000, 60},
	{"Sofa Cleaning", "2 seater", 5000, 60},
	{"Sofa Cleaning", "3 seater", 7500, 90},
	{"Sofa Cleaning", "Corner sofa", 10000, 120},
	// White Goods
	{"White Goods", "Washing machine service", 3000, 30},
	{"White Goods", "Dishwasher service", 3000, 30},
	{"White Goods", "Fridge freezer clean", 3000, 30},
	{"White Goods", "American fridge freezer clean", 5000, 60},
}
