package usecase

import (
	authdomain "wanderlist-backend/internal/auth/domain"
	authdto "wanderlist-backend/internal/auth/dto"
)

// AuthUsecase defines the authentication operations.
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.RegisterResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.LoginResponse, error)
	GetProfile(userID string) (*authdto.ProfileResponse, error)
	// ValidateToken verifies a bearer token and resolves its user. Every
	// failure mode (malformed, bad signature, expired, unknown user) is
	// reported as the same unauthorized error.
	ValidateToken(token string) (*authdomain.User, error)
}
