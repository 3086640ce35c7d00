package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/salary-admin-go/internal/domain/auth"
	"github.com/cmlabs-hris/salary-admin-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	jwt.Service
	username     string
	passwordHash []byte
}

// NewAuthService hashes the configured administrator password once so that
// login compares against a bcrypt hash, never the plaintext.
func NewAuthService(jwtService jwt.Service, username, password string) (auth.AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &AuthServiceImpl{
		Service:      jwtService,
		username:     username,
		passwordHash: hash,
	}, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(req.Password))
	if !usernameOK || passwordErr != nil {
		slog.Warn("Login rejected", "username", req.Username)
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(a.username)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		Token:     token,
		Username:  a.username,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, rawToken string) error {
	token, _, err := jwtauth.FromContext(ctx)
	if err != nil || token == nil || rawToken == "" {
		return auth.ErrInvalidToken
	}

	a.Service.RevokeToken(rawToken, token.Expiration().Unix())
	return nil
}
