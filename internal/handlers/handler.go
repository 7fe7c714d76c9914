// Package handlers exposes the storefront over HTTP: the catalog facade, the
// per-session cart engine and the checkout flow. All failures are converted
// to responses here; nothing escapes as a panic or process exit.
package handlers

import (
	"net/http"

	"beverage-storefront/internal/catalog"
	"beverage-storefront/internal/checkout"
	"beverage-storefront/internal/common/logger"
	"beverage-storefront/internal/storeapi"
)

type Handler struct {
	lg       *logger.Logger
	catalog  *catalog.Facade
	api      storeapi.Client
	notifier checkout.Notifier
	sessions *sessionStore
}

// New wires the handler. notifier may be nil when no broker is configured.
func New(lg *logger.Logger, cat *catalog.Facade, api storeapi.Client, notifier checkout.Notifier) *Handler {
	return &Handler{
		lg:       lg,
		catalog:  cat,
		api:      api,
		notifier: notifier,
		sessions: newSessionStore(),
	}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /beverages", h.listBeverages)
	mux.HandleFunc("POST /beverages/refresh", h.refreshBeverages)
	mux.HandleFunc("GET /beverages/{id}", h.getBeverage)

	mux.HandleFunc("GET /cart", h.getCart)
	mux.HandleFunc("POST /cart/items", h.addItem)
	mux.HandleFunc("PUT /cart/items", h.updateItem)
	mux.HandleFunc("DELETE /cart/items", h.removeItem)
	mux.HandleFunc("DELETE /cart", h.clearCart)

	mux.HandleFunc("GET /checkout", h.getCheckout)
	mux.HandleFunc("POST /checkout/info", h.submitInfo)
	mux.HandleFunc("POST /checkout/edit", h.editInfo)
	mux.HandleFunc("POST /checkout/submit", h.placeOrder)
	mux.HandleFunc("POST /checkout/retry", h.retryCheckout)
	mux.HandleFunc("GET /confirmation", h.confirmation)

	mux.HandleFunc("GET /orders", h.listOrders)
	mux.HandleFunc("GET /orders/{id}", h.getOrder)

	return mux
}
