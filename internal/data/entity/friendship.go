package entity

import (
	"time"

	"github.com/google/uuid"
)

type FriendshipStatus string

const (
	// Friendships are created already accepted; there is no request flow.
	FriendshipStatusAccepted FriendshipStatus = "accepted"
)

type Friendship struct {
	BaseSimple
	UserID   uuid.UUID        `db:"user_id"`
	FriendID uuid.UUID        `db:"friend_id"`
	Status   FriendshipStatus `db:"status"`
}

// Friend is the joined view returned by the friends listing:
// the friend's user row plus when the friendship was created.
type Friend struct {
	ID          uuid.UUID `db:"id"`
	Username    string    `db:"username"`
	DisplayName string    `db:"display_name"`
	FriendSince time.Time `db:"friend_since"`
}
