package services

import (
	"context"
	"time"

	"github.com/oguzkose/resourcehub/internal/app/models"
	"github.com/oguzkose/resourcehub/internal/app/repositories"
	"github.com/oguzkose/resourcehub/internal/pkg/apperrors"
	"github.com/oguzkose/resourcehub/internal/pkg/auth"
	"github.com/oguzkose/resourcehub/internal/pkg/logger"
	"github.com/oguzkose/resourcehub/internal/pkg/validation"
)

// AuthService handles registration, login and the current-user session
type AuthService struct {
	users      *repositories.UserRepository
	sessions   *repositories.SessionRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(
	users *repositories.UserRepository,
	sessions *repositories.SessionRepository,
	jwtService *auth.JWTService,
) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		jwtService: jwtService,
	}
}

// RegisterInput carries the fields of a registration request
type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	DepartmentID string
}

// Register validates the input, rejects duplicate emails and stores the new
// account with a hashed password. Email uniqueness is case-insensitive.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" || input.DepartmentID == "" {
		return nil, apperrors.NewValidationError("name, email, password and department are required")
	}
	if !validation.IsValidEmail(input.Email) {
		return nil, &apperrors.CustomError{Err: apperrors.ErrInvalidEmail, Message: "email address is not valid"}
	}
	if len(input.Password) < validation.PasswordMinLength {
		return nil, &apperrors.CustomError{Err: apperrors.ErrInvalidPassword, Message: "password must be at least 6 characters"}
	}

	existing, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Add(ctx, &models.User{
		Name:         input.Name,
		Email:        input.Email,
		DepartmentID: input.DepartmentID,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Str("userId", user.ID).Msg("User registered")
	return user, nil
}

// LoginResult is a successful login: the account, its fresh access token
// and the token lifetime in seconds.
type LoginResult struct {
	User      *models.User
	Token     string
	ExpiresIn int
}

// Login verifies the credentials, stamps the login time, persists the
// current-user pointer and issues an access token. A wrong email and a
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.users.Update(ctx, user.ID, repositories.UserUpdate{LastLogin: &now}); err != nil {
		return nil, err
	}
	user.LastLogin = now

	if err := s.sessions.SetCurrentUser(ctx, user); err != nil {
		return nil, err
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("userId", user.ID).Msg("User logged in")
	return &LoginResult{User: user, Token: token, ExpiresIn: expiresIn}, nil
}

// Logout clears the current-user pointer. Logging out while logged out is
// not an error.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// CurrentUser returns the logged-in account, or (nil, nil) when nobody is
// logged in
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	return s.sessions.GetCurrentUser(ctx)
}
