package wire

import (
	"lcm-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// GET /services - list the service catalog (public)
	r.Get("/services", catalogHandler.ListServices)
}
