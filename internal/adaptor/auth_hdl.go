package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-social/internal/dto/request"
	"cinema-social/internal/usecase"
	"cinema-social/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Handle dispatches /api/auth by method plus the action query parameter.
func (h *AuthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	action := r.URL.Query().Get("action")

	switch {
	case r.Method == http.MethodPost && action == "register":
		h.register(w, r)
	case r.Method == http.MethodPost && action == "login":
		h.login(w, r)
	case r.Method == http.MethodPut && action == "update-profile":
		h.updateProfile(w, r)
	case r.Method == http.MethodGet && action == "users":
		h.listUsers(w, r)
	default:
		utils.ResponseError(w, utils.NotFoundError(usecase.MsgUnknownPath))
	}
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, utils.ValidationError(usecase.MsgInvalidBody))
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseJSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, utils.ValidationError(usecase.MsgInvalidBody))
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateProfileRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, utils.ValidationError(usecase.MsgInvalidBody))
		return
	}

	resp, err := h.service.UpdateProfile(r.Context(), &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	// resp is nil when no row matched; the body is then literal null
	utils.ResponseJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	resp, err := h.service.ListUsers(r.Context(), query.Get("search"), query.Get("userId"))
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseJSON(w, http.StatusOK, resp)
}
