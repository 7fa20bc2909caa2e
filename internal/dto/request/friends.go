package request

type AddFriendRequest struct {
	UserID   string `json:"userId" validate:"required,uuid"`
	FriendID string `json:"friendId" validate:"required,uuid"`
}

type SendMessageRequest struct {
	SenderID   string `json:"senderId" validate:"required,uuid"`
	ReceiverID string `json:"receiverId" validate:"required,uuid"`
	Message    string `json:"message" validate:"required"`
}
