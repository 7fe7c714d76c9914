package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"beverage-storefront/internal/checkout"
	"beverage-storefront/internal/domain"
	"beverage-storefront/internal/validate"
)

func checkoutView(flow *checkout.Flow) map[string]any {
	state := flow.State()
	resp := map[string]any{"state": state}
	switch state {
	case checkout.StateReviewingSummary, checkout.StateSubmitting:
		sum := flow.Summary()
		resp["summary"] = sum
		resp["taxFormatted"] = validate.FormatCurrency(sum.Tax)
		resp["totalFormatted"] = validate.FormatCurrency(sum.Total)
	case checkout.StateConfirmed:
		resp["orderId"] = flow.OrderID()
	case checkout.StateFailed:
		if err := flow.Err(); err != nil {
			resp["error"] = err.Error()
		}
	}
	return resp
}

func (h *Handler) getCheckout(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	writeJSON(w, http.StatusOK, checkoutView(sess.currentFlow(h)))
}

func (h *Handler) submitInfo(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)

	var info domain.CustomerInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	flow := sess.checkoutFlow(h)
	fieldErrs, err := flow.SubmitInfo(info)
	if err != nil {
		writeProblem(w, http.StatusConflict, "invalid_state", err.Error())
		return
	}
	if len(fieldErrs) > 0 {
		writeFieldErrors(w, fieldErrs)
		return
	}
	writeJSON(w, http.StatusOK, checkoutView(flow))
}

func (h *Handler) editInfo(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	flow := sess.currentFlow(h)
	if err := flow.EditInfo(); err != nil {
		writeProblem(w, http.StatusConflict, "invalid_state", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, checkoutView(flow))
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	flow := sess.currentFlow(h)

	order, err := flow.PlaceOrder(r.Context())
	if errors.Is(err, checkout.ErrEmptyCart) {
		writeProblem(w, http.StatusConflict, "empty_cart", "cannot place an order with an empty cart")
		return
	}
	if err != nil {
		if flow.State() == checkout.StateFailed {
			// submission error: recoverable, cart preserved, retry available
			writeProblem(w, http.StatusBadGateway, "order_submit_failed", err.Error())
			return
		}
		writeProblem(w, http.StatusConflict, "invalid_state", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) retryCheckout(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	flow := sess.currentFlow(h)
	if err := flow.Retry(); err != nil {
		writeProblem(w, http.StatusConflict, "invalid_state", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, checkoutView(flow))
}

// confirmation mirrors the app's confirmation screen: without a confirmed
// order it redirects back to the catalog root instead of failing.
func (h *Handler) confirmation(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	flow := sess.currentFlow(h)
	if flow.State() != checkout.StateConfirmed || flow.OrderID() == "" {
		http.Redirect(w, r, "/beverages", http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"orderId": flow.OrderID()})
}
