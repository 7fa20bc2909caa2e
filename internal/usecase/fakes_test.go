package usecase

import (
	"context"

	"cinema-social/internal/data/entity"
	"cinema-social/internal/data/repository"

	"github.com/google/uuid"
)

// Hand-written fakes for the repository interfaces. Each records the
// arguments it was called with so tests can assert on the data flow.

type fakeUserRepo struct {
	created   *entity.User
	createErr error

	credUsername string
	credHash     string
	credUser     *entity.User
	credErr      error

	updatedID   uuid.UUID
	updatedName string
	updateUser  *entity.User
	updateErr   error

	searchTerm  string
	searchLimit int
	searchUsers []*entity.User
	searchErr   error
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.created = user
	return f.createErr
}

func (f *fakeUserRepo) FindByCredentials(_ context.Context, username, passwordHash string) (*entity.User, error) {
	f.credUsername = username
	f.credHash = passwordHash
	return f.credUser, f.credErr
}

func (f *fakeUserRepo) UpdateDisplayName(_ context.Context, id uuid.UUID, displayName string) (*entity.User, error) {
	f.updatedID = id
	f.updatedName = displayName
	return f.updateUser, f.updateErr
}

func (f *fakeUserRepo) Search(_ context.Context, search string, limit int) ([]*entity.User, error) {
	f.searchTerm = search
	f.searchLimit = limit
	return f.searchUsers, f.searchErr
}

type fakeFriendshipRepo struct {
	created   *entity.Friendship
	createErr error

	friendsUserID uuid.UUID
	friends       []*entity.Friend
	friendsErr    error
}

func (f *fakeFriendshipRepo) Create(_ context.Context, friendship *entity.Friendship) error {
	f.created = friendship
	return f.createErr
}

func (f *fakeFriendshipRepo) FindFriends(_ context.Context, userID uuid.UUID) ([]*entity.Friend, error) {
	f.friendsUserID = userID
	return f.friends, f.friendsErr
}

type markReadCall struct {
	receiverID uuid.UUID
	senderID   uuid.UUID
}

type fakeMessageRepo struct {
	created   *entity.Message
	createErr error

	convUserID   uuid.UUID
	convFriendID uuid.UUID
	conversation []*entity.ConversationMessage
	convErr      error

	markReadCalls []markReadCall
	markReadErr   error
}

func (f *fakeMessageRepo) Create(_ context.Context, message *entity.Message) error {
	f.created = message
	return f.createErr
}

func (f *fakeMessageRepo) FindConversation(_ context.Context, userID, friendID uuid.UUID) ([]*entity.ConversationMessage, error) {
	f.convUserID = userID
	f.convFriendID = friendID
	return f.conversation, f.convErr
}

func (f *fakeMessageRepo) MarkAsRead(_ context.Context, receiverID, senderID uuid.UUID) error {
	f.markReadCalls = append(f.markReadCalls, markReadCall{receiverID: receiverID, senderID: senderID})
	return f.markReadErr
}

type fakeOrderRepo struct {
	ticketOrder  *entity.TicketOrder
	productOrder *entity.ProductOrder
	createErr    error

	listUserID uuid.UUID
	orders     []*entity.OrderHistoryItem
	listErr    error
}

func (f *fakeOrderRepo) CreateWithProducts(_ context.Context, ticketOrder *entity.TicketOrder, productOrder *entity.ProductOrder) error {
	f.ticketOrder = ticketOrder
	f.productOrder = productOrder
	return f.createErr
}

func (f *fakeOrderRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.OrderHistoryItem, error) {
	f.listUserID = userID
	return f.orders, f.listErr
}

func newFakeRepository() (*repository.Repository, *fakeUserRepo, *fakeFriendshipRepo, *fakeMessageRepo, *fakeOrderRepo) {
	users := &fakeUserRepo{}
	friendships := &fakeFriendshipRepo{}
	messages := &fakeMessageRepo{}
	orders := &fakeOrderRepo{}

	repo := &repository.Repository{
		User:       users,
		Friendship: friendships,
		Message:    messages,
		Order:      orders,
	}

	return repo, users, friendships, messages, orders
}
