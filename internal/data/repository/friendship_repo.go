package repository

import (
	"context"
	"fmt"

	"cinema-social/internal/data/entity"
	"cinema-social/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FriendshipRepository interface {
	Create(ctx context.Context, friendship *entity.Friendship) error
	FindFriends(ctx context.Context, userID uuid.UUID) ([]*entity.Friend, error)
}

type friendshipRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFriendshipRepository(db database.PgxIface, log *zap.Logger) FriendshipRepository {
	return &friendshipRepository{
		db:  db,
		log: log.With(zap.String("repository", "friendship")),
	}
}

// Create inserts one directional friendship row. Calling it twice for the
// same pair inserts two rows; there is no duplicate check.
func (fr *friendshipRepository) Create(ctx context.Context, friendship *entity.Friendship) error {
	query := `
		INSERT INTO friendships (id, user_id, friend_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := fr.db.Exec(ctx, query,
		friendship.ID,
		friendship.UserID,
		friendship.FriendID,
		friendship.Status,
		friendship.CreatedAt,
	)

	if err != nil {
		fr.log.Error("Failed to create friendship",
			zap.Error(err),
			zap.String("user_id", friendship.UserID.String()),
			zap.String("friend_id", friendship.FriendID.String()),
		)
		return fmt.Errorf("create friendship %s -> %s: %w",
			friendship.UserID.String(), friendship.FriendID.String(), err)
	}

	return nil
}

// FindFriends joins accepted friendships to the users table, newest first.
// Only the user_id -> friend_id direction is listed.
func (fr *friendshipRepository) FindFriends(ctx context.Context, userID uuid.UUID) ([]*entity.Friend, error) {
	query := `
		SELECT u.id, u.username, u.display_name, f.created_at AS friend_since
		FROM friendships f
		JOIN users u ON f.friend_id = u.id
		WHERE f.user_id = $1 AND f.status = 'accepted'
		ORDER BY f.created_at DESC
	`

	rows, err := fr.db.Query(ctx, query, userID)
	if err != nil {
		fr.log.Error("Failed to find friends",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find friends of user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var friends []*entity.Friend
	for rows.Next() {
		var friend entity.Friend
		err := rows.Scan(
			&friend.ID,
			&friend.Username,
			&friend.DisplayName,
			&friend.FriendSince,
		)
		if err != nil {
			fr.log.Error("Failed to scan friend row", zap.Error(err))
			return nil, fmt.Errorf("scan friend row: %w", err)
		}
		friends = append(friends, &friend)
	}

	if err := rows.Err(); err != nil {
		fr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate friends rows: %w", err)
	}

	return friends, nil
}
