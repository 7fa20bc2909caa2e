package response

import (
	"time"

	"cinema-social/internal/data/entity"
)

type AddFriendResponse struct {
	FriendshipID string `json:"friendshipId"`
}

type FriendResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	FriendSince time.Time `json:"friend_since"`
}

type SendMessageResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type MessageResponse struct {
	ID             string    `json:"id"`
	SenderID       string    `json:"sender_id"`
	ReceiverID     string    `json:"receiver_id"`
	MessageText    string    `json:"message_text"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
	SenderUsername string    `json:"sender_username"`
	SenderName     string    `json:"sender_name"`
}

func FriendToResponse(friend *entity.Friend) FriendResponse {
	return FriendResponse{
		ID:          friend.ID.String(),
		Username:    friend.Username,
		DisplayName: friend.DisplayName,
		FriendSince: friend.FriendSince,
	}
}

func MessageToResponse(msg *entity.ConversationMessage) MessageResponse {
	return MessageResponse{
		ID:             msg.ID.String(),
		SenderID:       msg.SenderID.String(),
		ReceiverID:     msg.ReceiverID.String(),
		MessageText:    msg.MessageText,
		IsRead:         msg.IsRead,
		CreatedAt:      msg.CreatedAt,
		SenderUsername: msg.SenderUsername,
		SenderName:     msg.SenderName,
	}
}
