package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzkose/resourcehub/internal/app/models/dto"
	"github.com/oguzkose/resourcehub/internal/app/services"
	"github.com/oguzkose/resourcehub/internal/middleware"
	"github.com/oguzkose/resourcehub/internal/pkg/apperrors"
)

// AuthController handles registration, login and session endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register creates a new account
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("name, email, password and department are required"))
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), services.RegisterInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.AuthResponse{
		User: dto.ToUserResponse(user),
	}))
}

// Login verifies credentials and issues an access token
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("email and password are required"))
		return
	}

	result, err := c.authService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.AuthResponse{
		Token:     result.Token,
		ExpiresIn: result.ExpiresIn,
		User:      dto.ToUserResponse(result.User),
	}))
}

// Logout clears the current session
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.authService.Logout(ctx.Request.Context()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "Logged out"}))
}

// Me returns the logged-in account
func (c *AuthController) Me(ctx *gin.Context) {
	user, err := c.authService.CurrentUser(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if user == nil {
		middleware.HandleAPIError(ctx, apperrors.ErrUserNotFound)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToUserResponse(user)))
}
