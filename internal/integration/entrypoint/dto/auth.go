// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/spendxp/backend/internal/application/adapter"
	"github.com/spendxp/backend/internal/domain/entity"
)

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name" binding:"required,max=100"`
	Currency string `json:"currency"`
	Pin      string `json:"pin" binding:"required"`
}

// CheckUserRequest represents the request body for the pre-login lookup.
type CheckUserRequest struct {
	Email string `json:"email" binding:"required"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email string `json:"email" binding:"required"`
	Pin   string `json:"pin"`
}

// ResetPinRequest represents the request body for a PIN reset.
type ResetPinRequest struct {
	Email  string `json:"email" binding:"required"`
	NewPin string `json:"new_pin" binding:"required"`
}

// UpdateSecurityRequest represents the request body for changing login security.
type UpdateSecurityRequest struct {
	TwoFactorEnabled bool   `json:"two_factor_enabled"`
	NewPin           string `json:"new_pin,omitempty"`
}

// CheckUserResponse tells the client which login step comes next.
type CheckUserResponse struct {
	Exists           bool `json:"exists"`
	HasPin           bool `json:"has_pin"`
	TwoFactorEnabled bool `json:"two_factor_enabled"`
}

// SecurityResponse represents the login security settings.
type SecurityResponse struct {
	TwoFactorEnabled bool `json:"two_factor_enabled"`
	HasPin           bool `json:"has_pin"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

// TokenResponse represents a bare issued token.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ToTokenResponse converts an issued token to a TokenResponse DTO.
func ToTokenResponse(token *adapter.IssuedToken) TokenResponse {
	return TokenResponse{
		AccessToken: token.Token,
		ExpiresAt:   token.ExpiresAt,
	}
}

// ToAuthResponse builds the login/registration response.
func ToAuthResponse(token *adapter.IssuedToken, user *entity.User) AuthResponse {
	return AuthResponse{
		AccessToken: token.Token,
		ExpiresAt:   token.ExpiresAt,
		User:        ToUserResponse(user),
	}
}
