package entity

import (
	"github.com/google/uuid"
)

type Message struct {
	BaseSimple
	SenderID    uuid.UUID `db:"sender_id"`
	ReceiverID  uuid.UUID `db:"receiver_id"`
	MessageText string    `db:"message_text"`
	IsRead      bool      `db:"is_read"`
}

// ConversationMessage is a message joined with the sender's display info.
type ConversationMessage struct {
	Message
	SenderUsername string `db:"sender_username"`
	SenderName     string `db:"sender_name"`
}
