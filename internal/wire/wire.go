// internal/wire/wire.go
package wire

import (
	"net/http"
	"time"

	"lcm-booking/internal/adaptor"
	"lcm-booking/internal/data/repository"
	"lcm-booking/internal/notify"
	"lcm-booking/internal/usecase"
	"lcm-booking/pkg/middleware"
	"lcm-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	mailer := notify.NewMailer(config.Email, logger)
	service := usecase.NewService(repo, config, mailer, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireCatalog(r, handler.Catalog)
	wireBooking(r, handler.Booking, config, logger)
	wireMedia(r, handler.Media, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "success", map[string]any{
			"ok":   true,
			"time": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Root info endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "success", map[string]any{
			"ok":          true,
			"service":     "LCM Booking Backend",
			"launch_date": config.Booking.LaunchDate.Format("2006-01-02"),
		})
	})

	return r
}
