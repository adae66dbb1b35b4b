package handler

import (
	"net/http"

	"go-doctors-portal/internal/usecase"
	"go-doctors-portal/pkg/response"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase}
}

func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogUsecase.ListServices(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get services")
		return
	}

	response.OK(w, services)
}

// GetAvailability serves GET /available?date=D. The date is passed through
// unparsed.
func (h *CatalogHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	services, err := h.catalogUsecase.GetAvailability(r.Context(), date)
	if err != nil {
		response.InternalServerError(w, "Failed to compute availability")
		return
	}

	response.OK(w, services)
}
