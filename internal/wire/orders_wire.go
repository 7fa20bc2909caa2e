package wire

import (
	"cinema-social/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireOrders(r chi.Router, ordersHandler *adaptor.OrdersHandler) {
	// Routed by method alone: POST creates, GET lists
	r.HandleFunc("/api/orders", ordersHandler.Handle)
}
