package adaptor

import (
	"context"

	"cinema-social/internal/dto/request"
	"cinema-social/internal/dto/response"
)

// Fakes for the service interfaces, returning canned values.

type fakeAuthService struct {
	registerResp *response.UserResponse
	registerErr  error

	loginResp *response.UserResponse
	loginErr  error

	updateResp *response.UserResponse
	updateErr  error

	listSearch  string
	listExclude string
	listResp    []response.UserSummaryResponse
	listErr     error
}

func (f *fakeAuthService) Register(_ context.Context, _ *request.RegisterRequest) (*response.UserResponse, error) {
	return f.registerResp, f.registerErr
}

func (f *fakeAuthService) Login(_ context.Context, _ *request.LoginRequest) (*response.UserResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuthService) UpdateProfile(_ context.Context, _ *request.UpdateProfileRequest) (*response.UserResponse, error) {
	return f.updateResp, f.updateErr
}

func (f *fakeAuthService) ListUsers(_ context.Context, search, excludeUserID string) ([]response.UserSummaryResponse, error) {
	f.listSearch = search
	f.listExclude = excludeUserID
	return f.listResp, f.listErr
}

type fakeFriendsService struct {
	addResp *response.AddFriendResponse
	addErr  error

	friendsUserID string
	friendsResp   []response.FriendResponse
	friendsErr    error

	sendResp *response.SendMessageResponse
	sendErr  error

	messagesUserID   string
	messagesFriendID string
	messagesResp     []response.MessageResponse
	messagesErr      error
}

func (f *fakeFriendsService) AddFriend(_ context.Context, _ *request.AddFriendRequest) (*response.AddFriendResponse, error) {
	return f.addResp, f.addErr
}

func (f *fakeFriendsService) ListFriends(_ context.Context, userID string) ([]response.FriendResponse, error) {
	f.friendsUserID = userID
	return f.friendsResp, f.friendsErr
}

func (f *fakeFriendsService) SendMessage(_ context.Context, _ *request.SendMessageRequest) (*response.SendMessageResponse, error) {
	return f.sendResp, f.sendErr
}

func (f *fakeFriendsService) ListMessages(_ context.Context, userID, friendID string) ([]response.MessageResponse, error) {
	f.messagesUserID = userID
	f.messagesFriendID = friendID
	return f.messagesResp, f.messagesErr
}

type fakeOrdersService struct {
	createResp *response.OrderSummaryResponse
	createErr  error

	listUserID string
	listResp   []response.OrderResponse
	listErr    error
}

func (f *fakeOrdersService) CreateOrder(_ context.Context, _ *request.CreateOrderRequest) (*response.OrderSummaryResponse, error) {
	return f.createResp, f.createErr
}

func (f *fakeOrdersService) ListOrders(_ context.Context, userID string) ([]response.OrderResponse, error) {
	f.listUserID = userID
	return f.listResp, f.listErr
}
