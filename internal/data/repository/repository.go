package repository

import (
	"cinema-social/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Friendship FriendshipRepository
	Message    MessageRepository
	Order      OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Friendship: NewFriendshipRepository(db, log),
		Message:    NewMessageRepository(db, log),
		Order:      NewOrderRepository(db, log),
	}
}
