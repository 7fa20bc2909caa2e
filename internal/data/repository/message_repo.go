package repository

import (
	"context"
	"fmt"

	"cinema-social/internal/data/entity"
	"cinema-social/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindConversation(ctx context.Context, userID, friendID uuid.UUID) ([]*entity.ConversationMessage, error)
	MarkAsRead(ctx context.Context, receiverID, senderID uuid.UUID) error
}

type messageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMessageRepository(db database.PgxIface, log *zap.Logger) MessageRepository {
	return &messageRepository{
		db:  db,
		log: log.With(zap.String("repository", "message")),
	}
}

func (mr *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	query := `
		INSERT INTO messages (id, sender_id, receiver_id, message_text, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := mr.db.Exec(ctx, query,
		message.ID,
		message.SenderID,
		message.ReceiverID,
		message.MessageText,
		message.IsRead,
		message.CreatedAt,
	)

	if err != nil {
		mr.log.Error("Failed to create message",
			zap.Error(err),
			zap.String("sender_id", message.SenderID.String()),
			zap.String("receiver_id", message.ReceiverID.String()),
		)
		return fmt.Errorf("create message %s -> %s: %w",
			message.SenderID.String(), message.ReceiverID.String(), err)
	}

	return nil
}

// FindConversation fetches both directions of the conversation between
// two users, oldest first, joined with the sender's display info.
func (mr *messageRepository) FindConversation(ctx context.Context, userID, friendID uuid.UUID) ([]*entity.ConversationMessage, error) {
	query := `
		SELECT m.id, m.sender_id, m.receiver_id, m.message_text, m.is_read, m.created_at,
		       u.username AS sender_username, u.display_name AS sender_name
		FROM messages m
		JOIN users u ON m.sender_id = u.id
		WHERE (m.sender_id = $1 AND m.receiver_id = $2)
		   OR (m.sender_id = $2 AND m.receiver_id = $1)
		ORDER BY m.created_at ASC
	`

	rows, err := mr.db.Query(ctx, query, userID, friendID)
	if err != nil {
		mr.log.Error("Failed to find conversation",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("friend_id", friendID.String()),
		)
		return nil, fmt.Errorf("find conversation %s <-> %s: %w",
			userID.String(), friendID.String(), err)
	}
	defer rows.Close()

	var messages []*entity.ConversationMessage
	for rows.Next() {
		var msg entity.ConversationMessage
		err := rows.Scan(
			&msg.ID,
			&msg.SenderID,
			&msg.ReceiverID,
			&msg.MessageText,
			&msg.IsRead,
			&msg.CreatedAt,
			&msg.SenderUsername,
			&msg.SenderName,
		)
		if err != nil {
			mr.log.Error("Failed to scan message row", zap.Error(err))
			return nil, fmt.Errorf("scan message row: %w", err)
		}
		messages = append(messages, &msg)
	}

	if err := rows.Err(); err != nil {
		mr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate messages rows: %w", err)
	}

	return messages, nil
}

// MarkAsRead flags every message from senderID to receiverID as read.
// Idempotent; re-setting true to true affects the same rows again.
func (mr *messageRepository) MarkAsRead(ctx context.Context, receiverID, senderID uuid.UUID) error {
	query := `UPDATE messages SET is_read = TRUE WHERE receiver_id = $1 AND sender_id = $2`

	_, err := mr.db.Exec(ctx, query, receiverID, senderID)
	if err != nil {
		mr.log.Error("Failed to mark messages as read",
			zap.Error(err),
			zap.String("receiver_id", receiverID.String()),
			zap.String("sender_id", senderID.String()),
		)
		return fmt.Errorf("mark messages read %s -> %s: %w",
			senderID.String(), receiverID.String(), err)
	}

	return nil
}
