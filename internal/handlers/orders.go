package handlers

import (
	"errors"
	"net/http"

	"beverage-storefront/internal/storeapi"
)

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.api.FetchOrders(r.Context())
	if err != nil {
		h.lg.Error("orders_fetch_failed", err, nil)
		writeProblem(w, http.StatusBadGateway, "upstream_error", "could not load orders")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	order, err := h.api.FetchOrder(r.Context(), id)
	if errors.Is(err, storeapi.ErrNotFound) {
		writeProblem(w, http.StatusNotFound, "not_found", "order not found")
		return
	}
	if err != nil {
		h.lg.Error("order_fetch_failed", err, map[string]any{"order_id": id})
		writeProblem(w, http.StatusBadGateway, "upstream_error", "could not load the order")
		return
	}
	writeJSON(w, http.StatusOK, order)
}
