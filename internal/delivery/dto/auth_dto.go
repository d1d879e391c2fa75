package dto

// Request DTOs

type LoginRequest struct {
	Username string `json:"username" validate:"required,recordfield"`
	Password string `json:"password" validate:"required,recordfield"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	EntityID string `json:"entity_id,omitempty"`
}
