package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest, session SessionTrackingRequest) (TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string, session SessionTrackingRequest) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
