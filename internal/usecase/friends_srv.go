package usecase

import (
	"context"
	"time"

	"cinema-social/internal/data/entity"
	"cinema-social/internal/data/repository"
	"cinema-social/internal/dto/request"
	"cinema-social/internal/dto/response"
	"cinema-social/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FriendsService interface {
	AddFriend(ctx context.Context, req *request.AddFriendRequest) (*response.AddFriendResponse, error)
	ListFriends(ctx context.Context, userID string) ([]response.FriendResponse, error)
	SendMessage(ctx context.Context, req *request.SendMessageRequest) (*response.SendMessageResponse, error)
	ListMessages(ctx context.Context, userID, friendID string) ([]response.MessageResponse, error)
}

type friendsService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFriendsService(repo *repository.Repository, log *zap.Logger) FriendsService {
	return &friendsService{
		repo: repo,
		log:  log.With(zap.String("service", "friends")),
	}
}

// AddFriend inserts one directional, already-accepted friendship row.
// Repeated calls for the same pair insert duplicates; known gap, kept.
func (s *friendsService) AddFriend(ctx context.Context, req *request.AddFriendRequest) (*response.AddFriendResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add friend validation failed", zap.Any("errors", errs))
		return nil, utils.ValidationError(MsgFillAllFields)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, utils.ValidationError(MsgFillAllFields)
	}
	friendID, err := uuid.Parse(req.FriendID)
	if err != nil {
		return nil, utils.ValidationError(MsgFillAllFields)
	}

	friendship := &entity.Friendship{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:   userID,
		FriendID: friendID,
		Status:   entity.FriendshipStatusAccepted,
	}

	if err := s.repo.Friendship.Create(ctx, friendship); err != nil {
		s.log.Error("Failed to add friend", zap.Error(err),
			zap.String("user_id", req.UserID), zap.String("friend_id", req.FriendID))
		return nil, utils.InternalError(err)
	}

	s.log.Info("Friend added",
		zap.String("friendship_id", friendship.ID.String()),
		zap.String("user_id", req.UserID),
		zap.String("friend_id", req.FriendID))

	return &response.AddFriendResponse{FriendshipID: friendship.ID.String()}, nil
}

func (s *friendsService) ListFriends(ctx context.Context, userID string) ([]response.FriendResponse, error) {
	if userID == "" {
		return nil, utils.ValidationError(MsgUserIDRequired)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ValidationError(MsgUserIDRequired)
	}

	found, err := s.repo.Friendship.FindFriends(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to list friends", zap.Error(err), zap.String("user_id", userID))
		return nil, utils.InternalError(err)
	}

	friends := make([]response.FriendResponse, 0, len(found))
	for _, friend := range found {
		friends = append(friends, response.FriendToResponse(friend))
	}

	return friends, nil
}

func (s *friendsService) SendMessage(ctx context.Context, req *request.SendMessageRequest) (*response.SendMessageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Send message validation failed", zap.Any("errors", errs))
		return nil, utils.ValidationError(MsgFillAllFields)
	}

	senderID, err := uuid.Parse(req.SenderID)
	if err != nil {
		return nil, utils.ValidationError(MsgFillAllFields)
	}
	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		return nil, utils.ValidationError(MsgFillAllFields)
	}

	message := &entity.Message{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		SenderID:    senderID,
		ReceiverID:  receiverID,
		MessageText: req.Message,
		IsRead:      false,
	}

	if err := s.repo.Message.Create(ctx, message); err != nil {
		s.log.Error("Failed to send message", zap.Error(err),
			zap.String("sender_id", req.SenderID), zap.String("receiver_id", req.ReceiverID))
		return nil, utils.InternalError(err)
	}

	s.log.Info("Message sent",
		zap.String("message_id", message.ID.String()),
		zap.String("sender_id", req.SenderID),
		zap.String("receiver_id", req.ReceiverID))

	return &response.SendMessageResponse{
		ID:        message.ID.String(),
		CreatedAt: message.CreatedAt,
	}, nil
}

// ListMessages returns the bidirectional conversation oldest-first and,
// as a side effect of every fetch, marks all friendID -> userID messages
// read. The marking is unconditional; there is no separate mark-read
// endpoint for the frontend to call.
func (s *friendsService) ListMessages(ctx context.Context, userID, friendID string) ([]response.MessageResponse, error) {
	if userID == "" || friendID == "" {
		return nil, utils.ValidationError(MsgUserFriendRequired)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ValidationError(MsgUserFriendRequired)
	}
	friendUUID, err := uuid.Parse(friendID)
	if err != nil {
		return nil, utils.ValidationError(MsgUserFriendRequired)
	}

	found, err := s.repo.Message.FindConversation(ctx, userUUID, friendUUID)
	if err != nil {
		s.log.Error("Failed to list messages", zap.Error(err),
			zap.String("user_id", userID), zap.String("friend_id", friendID))
		return nil, utils.InternalError(err)
	}

	if err := s.repo.Message.MarkAsRead(ctx, userUUID, friendUUID); err != nil {
		s.log.Error("Failed to mark messages read", zap.Error(err),
			zap.String("user_id", userID), zap.String("friend_id", friendID))
		return nil, utils.InternalError(err)
	}

	messages := make([]response.MessageResponse, 0, len(found))
	for _, msg := range found {
		messages = append(messages, response.MessageToResponse(msg))
	}

	return messages, nil
}
