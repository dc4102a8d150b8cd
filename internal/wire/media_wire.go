package wire

import (
	"lcm-booking/internal/adaptor"
	"lcm-booking/pkg/middleware"
	"lcm-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMedia(
	r chi.Router,
	mediaHandler *adaptor.MediaHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminKey(config.Admin, log))

		// POST /upload-media - upload a media file (admin)
		r.Post("/upload-media", mediaHandler.Upload)
	})

	// ==================== PUBLIC ROUTES ====================
	// GET /uploads/{name} - serve an uploaded file
	r.Get("/uploads/{name}", mediaHandler.ServeUpload)
}
