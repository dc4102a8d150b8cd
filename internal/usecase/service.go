package usecase

import (
	"lcm-booking/internal/data/repository"
	"lcm-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Catalog CatalogService
	Booking BookingService
	Media   MediaService
}

func NewService(repo *repository.Repository, config *utils.Config, notifier Notifier, log *zap.Logger) *Service {
	return &Service{
		Catalog: NewCatalogService(repo.Service, log),
		Booking: NewBookingService(repo, config, notifier, log),
		Media:   NewMediaService(config.Upload, log),
	}
}
