package response

import (
	"time"

	"cinema-social/internal/data/entity"
)

type UserResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserSummaryResponse is the trimmed row returned by user listing/search.
type UserSummaryResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

func UserToResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID.String(),
		Username:    user.Username,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt,
	}
}

func UserToSummary(user *entity.User) UserSummaryResponse {
	return UserSummaryResponse{
		ID:          user.ID.String(),
		Username:    user.Username,
		DisplayName: user.DisplayName,
	}
}
