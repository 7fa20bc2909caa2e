package repository

import (
	"context"
	"testing"
	"time"

	"cinema-social/internal/data/entity"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMessageRepositoryCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMessageRepository(mock, zap.NewNop())

	msg := &entity.Message{
		BaseSimple:  entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		SenderID:    uuid.New(),
		ReceiverID:  uuid.New(),
		MessageText: "Привет!",
		IsRead:      false,
	}

	mock.ExpectExec("INSERT INTO messages").
		WithArgs(msg.ID, msg.SenderID, msg.ReceiverID, "Привет!", false, msg.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), msg))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepositoryFindConversation(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMessageRepository(mock, zap.NewNop())

	userID := uuid.New()
	friendID := uuid.New()
	now := time.Now()

	columns := []string{"id", "sender_id", "receiver_id", "message_text",
		"is_read", "created_at", "sender_username", "sender_name"}

	mock.ExpectQuery("SELECT m.id, m.sender_id").
		WithArgs(userID, friendID).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(uuid.New(), userID, friendID, "Привет!", true, now, "ivan", "Иван").
			AddRow(uuid.New(), friendID, userID, "Привет, как дела?", false, now, "petr", "Пётр"))

	messages, err := repo.FindConversation(context.Background(), userID, friendID)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, "ivan", messages[0].SenderUsername)
	assert.Equal(t, "Пётр", messages[1].SenderName)
	assert.False(t, messages[1].IsRead)
}

func TestMessageRepositoryMarkAsRead(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMessageRepository(mock, zap.NewNop())

	receiverID := uuid.New()
	senderID := uuid.New()

	// Argument order matters: receiver first, then sender
	mock.ExpectExec("UPDATE messages SET is_read").
		WithArgs(receiverID, senderID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	require.NoError(t, repo.MarkAsRead(context.Background(), receiverID, senderID))
	assert.NoError(t, mock.ExpectationsWereMet())
}
