package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"beverage-storefront/internal/cart"
	"beverage-storefront/internal/domain"
	"beverage-storefront/internal/storeapi"
	"beverage-storefront/internal/validate"
)

func cartView(c *cart.Cart) domain.CartView {
	subtotal := c.Subtotal()
	return domain.CartView{
		Items:             c.Items(),
		ItemCount:         c.ItemCount(),
		Subtotal:          subtotal,
		SubtotalFormatted: validate.FormatCurrency(subtotal),
	}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	writeJSON(w, http.StatusOK, cartView(sess.cart))
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)

	var req domain.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if err := validate.Quantity(req.Quantity); err != nil {
		writeFieldErrors(w, map[string]string{"quantity": err.Error()})
		return
	}

	bev, err := h.catalog.Beverage(r.Context(), req.BeverageID)
	if errors.Is(err, storeapi.ErrNotFound) {
		writeProblem(w, http.StatusNotFound, "not_found", "beverage not found")
		return
	}
	if err != nil {
		h.lg.Error("catalog_fetch_failed", err, map[string]any{"beverage_id": req.BeverageID})
		writeProblem(w, http.StatusBadGateway, "upstream_error", "could not load the beverage")
		return
	}
	size, ok := bev.Size(req.SizeID)
	if !ok {
		writeProblem(w, http.StatusNotFound, "not_found", "beverage has no such size")
		return
	}

	if err := sess.cart.Add(bev, size, req.Quantity); err != nil {
		writeFieldErrors(w, map[string]string{"quantity": err.Error()})
		return
	}
	h.lg.Debug("cart_item_added", map[string]any{
		"session_id": sess.id, "beverage_id": bev.ID, "size_id": size.ID, "quantity": req.Quantity,
	})
	writeJSON(w, http.StatusOK, cartView(sess.cart))
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)

	var req domain.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	sess.cart.UpdateQuantity(req.BeverageID, req.SizeID, req.Quantity)
	writeJSON(w, http.StatusOK, cartView(sess.cart))
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)

	beverageID := r.URL.Query().Get("beverageId")
	sizeID := r.URL.Query().Get("sizeId")
	if beverageID == "" || sizeID == "" {
		writeProblem(w, http.StatusBadRequest, "bad_request", "beverageId and sizeId are required")
		return
	}
	sess.cart.Remove(beverageID, sizeID)
	writeJSON(w, http.StatusOK, cartView(sess.cart))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	sess.cart.Clear()
	writeJSON(w, http.StatusOK, cartView(sess.cart))
}
