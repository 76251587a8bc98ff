package auth

import (
	"context"
)

// AuthService authenticates the admin principal configured through the
// environment and issues access tokens for it.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
