package usecase

import (
	"cinema-social/internal/data/repository"
	"cinema-social/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Friends FriendsService
	Orders  OrdersService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, log),
		Friends: NewFriendsService(repo, log),
		Orders:  NewOrdersService(repo, log),
	}
}
