// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"confusion/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new local account.
type SignupInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// LoginInput defines the data required for a user to log in with a local credential.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// SignupOutput returns the newly created user's basic information.
type SignupOutput struct {
	User *entity.User
}

// LoginOutput returns the bearer token issued after successful verification.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the interface for account and credential operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Signup registers a new local account with a hashed password.
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)

	// VerifyBasic checks a username/password pair against the stored local
	// credential and returns the account it belongs to. A user whose account
	// was provisioned by an external provider has no local credential and
	// can never pass this check.
	VerifyBasic(ctx context.Context, username, password string) (*entity.User, error)

	// Login verifies a local credential and issues a bearer token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// CheckToken verifies a bearer token and confirms its subject still exists.
	CheckToken(ctx context.Context, tokenString string) (*entity.User, error)

	// GoogleLogin exchanges a Google-issued token for a local account,
	// provisioning it on first sight, and issues a bearer token.
	GoogleLogin(ctx context.Context, accessToken string) (*LoginOutput, error)

	// ListUsers returns every registered account.
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
