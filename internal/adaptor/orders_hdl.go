package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-social/internal/dto/request"
	"cinema-social/internal/usecase"
	"cinema-social/pkg/utils"

	"go.uber.org/zap"
)

type OrdersHandler struct {
	service usecase.OrdersService
	log     *zap.Logger
}

func NewOrdersHandler(service usecase.OrdersService, log *zap.Logger) *OrdersHandler {
	return &OrdersHandler{
		service: service,
		log:     log,
	}
}

// Handle dispatches /api/orders by method alone; there is no action
// parameter on this endpoint. Unsupported methods get 405, not 404.
func (h *OrdersHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.createOrder(w, r)
	case http.MethodGet:
		h.listOrders(w, r)
	default:
		utils.ResponseError(w, utils.MethodNotAllowedError(usecase.MsgMethodNotAllowed))
	}
}

func (h *OrdersHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req request.CreateOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, utils.ValidationError(usecase.MsgInvalidBody))
		return
	}

	resp, err := h.service.CreateOrder(r.Context(), &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseJSON(w, http.StatusCreated, resp)
}

func (h *OrdersHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListOrders(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseJSON(w, http.StatusOK, resp)
}
