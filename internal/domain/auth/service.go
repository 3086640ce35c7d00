package auth

import (
	"context"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	// Logout revokes rawToken; the verified claims are read from ctx.
	Logout(ctx context.Context, rawToken string) error
}
