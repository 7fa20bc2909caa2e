package request

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	// DisplayName defaults to Username when empty
	DisplayName string `json:"displayName"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	UserID      string `json:"userId" validate:"required,uuid"`
	DisplayName string `json:"displayName" validate:"required"`
}
