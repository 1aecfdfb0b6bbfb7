// Package response holds the wire representations returned by the HTTP delivery.
package response

import (
	"time"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// User is the public view of an account. The hashed password stays out of
// every response, so the entity is mapped instead of serialized directly.
type User struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser maps a user entity to its public representation.
func NewUser(user *entity.User) *User {
	return &User{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// NewUserList maps a slice of user entities, keeping their order.
func NewUserList(users []*entity.User) []*User {
	list := make([]*User, 0, len(users))
	for _, user := range users {
		list = append(list, NewUser(user))
	}

	return list
}

// Token is the credential payload returned by a successful login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Error returns an error response wrapped in the standard envelope.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details are client hints for 4xx responses; authentication and server
	// errors stay opaque.
	if statusCode >= 500 || statusCode == 401 || statusCode == 403 {
		details = nil
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &domainerrors.MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}
