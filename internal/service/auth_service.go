package service

import (
	"context"

	"recipebox/internal/auth"
	apperrors "recipebox/internal/errors"
	"recipebox/internal/repository"
)

// AuthService verifies credentials and issues bearer tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (accessToken string, err error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
	hasher     *auth.PasswordHasher
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService, hasher *auth.PasswordHasher) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
		hasher:     hasher,
	}
}

// Login authenticates a user by email and password and returns a signed
// access token whose subject is the user's email. An unknown email and a
// wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", apperrors.ErrInvalidCredentials
	}

	return s.jwtService.Issue(user.Email)
}
