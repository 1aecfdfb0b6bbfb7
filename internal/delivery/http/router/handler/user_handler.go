// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"passport/internal/delivery/http/middleware"
	"passport/internal/delivery/http/response"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createUserRequest is the JSON payload accepted by user registration.
type createUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100,username"`
	Email    string `json:"email" validate:"required,email,max=255"`
	FullName string `json:"full_name" validate:"omitempty,max=255"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// RegisterUser handles the user registration request.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body could not be parsed")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.NewUser(user))
}

// ListUsers handles the request for all registered users.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewUserList(users))
}

// Login handles the user login request. Credentials arrive form-encoded with
// the OAuth2 password flow field names, not as JSON.
func (h *UserHandler) Login(c echo.Context) error {
	input := &usecase.LoginInput{
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.Token{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
	})
}

// CurrentUser handles the request for the authenticated user's own account.
func (h *UserHandler) CurrentUser(c echo.Context) error {
	username, ok := c.Get(middleware.ContextKeyUsername).(string)
	if !ok || username == "" {
		return domainerrors.ErrInvalidToken.WrapMessage("token subject missing from request context")
	}

	user, err := h.uc.CurrentUser(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewUser(user))
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
