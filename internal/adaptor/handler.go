package adaptor

import (
	"cinema-social/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Friends *FriendsHandler
	Orders  *OrdersHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Friends: NewFriendsHandler(service.Friends, log),
		Orders:  NewOrdersHandler(service.Orders, log),
	}
}
