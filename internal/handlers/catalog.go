package handlers

import (
	"errors"
	"net/http"

	"beverage-storefront/internal/storeapi"
)

func (h *Handler) listBeverages(w http.ResponseWriter, r *http.Request) {
	bevs, err := h.catalog.Beverages(r.Context())
	if err != nil {
		h.lg.Error("catalog_fetch_failed", err, nil)
		writeProblem(w, http.StatusBadGateway, "upstream_error", "could not load the beverage catalog")
		return
	}
	writeJSON(w, http.StatusOK, bevs)
}

func (h *Handler) refreshBeverages(w http.ResponseWriter, r *http.Request) {
	bevs, err := h.catalog.Refresh(r.Context())
	if err != nil {
		h.lg.Error("catalog_refresh_failed", err, nil)
		writeProblem(w, http.StatusBadGateway, "upstream_error", "could not refresh the beverage catalog")
		return
	}
	writeJSON(w, http.StatusOK, bevs)
}

func (h *Handler) getBeverage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	bev, err := h.catalog.Beverage(r.Context(), id)
	if errors.Is(err, storeapi.ErrNotFound) {
		writeProblem(w, http.StatusNotFound, "not_found", "beverage not found")
		return
	}
	if err != nil {
		h.lg.Error("catalog_fetch_failed", err, map[string]any{"beverage_id": id})
		writeProblem(w, http.StatusBadGateway, "upstream_error", "could not load the beverage")
		return
	}
	writeJSON(w, http.StatusOK, bev)
}
