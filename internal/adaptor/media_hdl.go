package adaptor

import (
	"errors"
	"net/http"

	"lcm-booking/internal/usecase"
	"lcm-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// uploads are small images for the marketing site; 10 MB is plenty
const maxUploadBytes = 10 << 20

type MediaHandler struct {
	service usecase.MediaService
	log     *zap.Logger
}

func NewMediaHandler(service usecase.MediaService, log *zap.Logger) *MediaHandler {
	return &MediaHandler{
		service: service,
		log:     log.With(zap.String("handler", "media")),
	}
}

// Upload handles POST /upload-media (admin only)
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.ResponseBadRequest(w, "No file", nil)
		return
	}
	defer file.Close()

	result, err := h.service.Save(r.Context(), header.Filename, file)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			utils.ResponseBadRequest(w, err.Error(), nil)
			return
		}
		h.log.Error("Failed to save upload",
			zap.Error(err),
			zap.String("filename", header.Filename))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// ServeUpload handles GET /uploads/{name} (public)
func (h *MediaHandler) ServeUpload(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	path, err := h.service.Resolve(name)
	if err != nil {
		utils.ResponseNotFound(w, "File not found")
		return
	}

	http.ServeFile(w, r, path)
}
