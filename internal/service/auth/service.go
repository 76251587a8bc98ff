package auth

import (
	"context"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/config"
	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	cfg        config.AuthConfig
	jwtService jwt.Service
}

func NewAuthService(cfg config.AuthConfig, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		cfg:        cfg,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService. The only principal is the admin
// configured through the environment; the stored credential is a
// bcrypt hash, never the password itself.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	if req.Email != s.cfg.AdminEmail {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(req.Email)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
