// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"passport/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Username string
	Email    string
	FullName string
	Password string
}

// LoginInput defines the credentials submitted with a login attempt.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the minted credential after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
}

// UserUsecase defines the interface for user account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	CurrentUser(ctx context.Context, username string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
