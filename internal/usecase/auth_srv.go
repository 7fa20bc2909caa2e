package usecase

import (
	"context"
	"errors"
	"time"

	"cinema-social/internal/data/entity"
	"cinema-social/internal/data/repository"
	"cinema-social/internal/dto/request"
	"cinema-social/internal/dto/response"
	"cinema-social/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// uniqueViolation is the postgres error code for a uniqueness conflict
const uniqueViolation = "23505"

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error)
	// UpdateProfile returns (nil, nil) when no user matched; the handler
	// turns that into a 200 with a null body.
	UpdateProfile(ctx context.Context, req *request.UpdateProfileRequest) (*response.UserResponse, error)
	ListUsers(ctx context.Context, search, excludeUserID string) ([]response.UserSummaryResponse, error)
}

type authService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAuthService(repo *repository.Repository, log *zap.Logger) AuthService {
	return &authService{
		repo: repo,
		log:  log.With(zap.String("service", "auth")),
	}
}

// usersPageSize is the fixed listing limit; there is no pagination.
const usersPageSize = 20

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, utils.ValidationError(MsgFillAllFields)
	}

	// 2. Default display name ke username
	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Username
	}

	// 3. Create user entity
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: utils.HashPassword(req.Password),
		DisplayName:  displayName,
	}

	// 4. Save user. The unique constraints on username/email arbitrate
	// concurrent registrations; no pre-check query.
	if err := s.repo.User.Create(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			s.log.Warn("Register conflict",
				zap.String("username", req.Username),
				zap.String("email", req.Email))
			return nil, utils.ConflictError(MsgUserExists, err)
		}

		s.log.Error("Failed to create user", zap.Error(err), zap.String("username", req.Username))
		return nil, utils.InternalError(err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return response.UserToResponse(user), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, utils.ValidationError(MsgFillAllFields)
	}

	// 2. Single lookup by username AND digest. A wrong username and a
	// wrong password are indistinguishable to the caller.
	user, err := s.repo.User.FindByCredentials(ctx, req.Username, utils.HashPassword(req.Password))
	if err != nil {
		s.log.Error("Failed to find user by credentials", zap.Error(err), zap.String("username", req.Username))
		return nil, utils.InternalError(err)
	}

	if user == nil {
		s.log.Warn("Login failed", zap.String("username", req.Username))
		return nil, utils.AuthFailureError(MsgInvalidCredentials)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return response.UserToResponse(user), nil
}

func (s *authService) UpdateProfile(ctx context.Context, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, utils.ValidationError(MsgFillAllFields)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, utils.ValidationError(MsgFillAllFields)
	}

	user, err := s.repo.User.UpdateDisplayName(ctx, userID, req.DisplayName)
	if err != nil {
		s.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", req.UserID))
		return nil, utils.InternalError(err)
	}

	// No matching row: kembalikan nil, handler menulis body null
	if user == nil {
		s.log.Warn("Update profile matched no user", zap.String("user_id", req.UserID))
		return nil, nil
	}

	s.log.Info("Profile updated", zap.String("user_id", user.ID.String()))

	return response.UserToResponse(user), nil
}

func (s *authService) ListUsers(ctx context.Context, search, excludeUserID string) ([]response.UserSummaryResponse, error) {
	found, err := s.repo.User.Search(ctx, search, usersPageSize)
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err), zap.String("search", search))
		return nil, utils.InternalError(err)
	}

	// excludeUserID is filtered after the query, so the page can come
	// back shorter than the limit
	users := make([]response.UserSummaryResponse, 0, len(found))
	for _, user := range found {
		if excludeUserID != "" && user.ID.String() == excludeUserID {
			continue
		}
		users = append(users, response.UserToSummary(user))
	}

	return users, nil
}
