package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-social/internal/dto/request"
	"cinema-social/internal/usecase"
	"cinema-social/pkg/utils"

	"go.uber.org/zap"
)

type FriendsHandler struct {
	service usecase.FriendsService
	log     *zap.Logger
}

func NewFriendsHandler(service usecase.FriendsService, log *zap.Logger) *FriendsHandler {
	return &FriendsHandler{
		service: service,
		log:     log,
	}
}

// Handle dispatches /api/friends by method plus the action query parameter.
func (h *FriendsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	action := r.URL.Query().Get("action")

	switch {
	case r.Method == http.MethodPost && action == "add-friend":
		h.addFriend(w, r)
	case r.Method == http.MethodGet && action == "friends":
		h.listFriends(w, r)
	case r.Method == http.MethodPost && action == "send-message":
		h.sendMessage(w, r)
	case r.Method == http.MethodGet && action == "messages":
		h.listMessages(w, r)
	default:
		utils.ResponseError(w, utils.NotFoundError(usecase.MsgUnknownPath))
	}
}

func (h *FriendsHandler) addFriend(w http.ResponseWriter, r *http.Request) {
	var req request.AddFriendRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, utils.ValidationError(usecase.MsgInvalidBody))
		return
	}

	resp, err := h.service.AddFriend(r.Context(), &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseJSON(w, http.StatusCreated, resp)
}

func (h *FriendsHandler) listFriends(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListFriends(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseJSON(w, http.StatusOK, resp)
}

func (h *FriendsHandler) sendMessage(w http.ResponseWriter, r *http.Request) {
	var req request.SendMessageRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, utils.ValidationError(usecase.MsgInvalidBody))
		return
	}

	resp, err := h.service.SendMessage(r.Context(), &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseJSON(w, http.StatusCreated, resp)
}

func (h *FriendsHandler) listMessages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	resp, err := h.service.ListMessages(r.Context(), query.Get("userId"), query.Get("friendId"))
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseJSON(w, http.StatusOK, resp)
}
