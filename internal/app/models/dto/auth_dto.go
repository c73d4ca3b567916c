package dto

import (
	"time"

	"github.com/oguzkose/resourcehub/internal/app/models"
)

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	DepartmentID string `json:"departmentId" binding:"required"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of an account. The password hash never
// leaves the server.
type UserResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	DepartmentID string    `json:"departmentId"`
	CreatedAt    time.Time `json:"createdAt"`
	LastLogin    time.Time `json:"lastLogin"`
}

// AuthResponse is a successful login or registration
type AuthResponse struct {
	Token     string       `json:"token,omitempty"`
	ExpiresIn int          `json:"expiresIn,omitempty"`
	User      UserResponse `json:"user"`
}

// ToUserResponse maps an account to its public view
func ToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		DepartmentID: user.DepartmentID,
		CreatedAt:    user.CreatedAt,
		LastLogin:    user.LastLogin,
	}
}
