package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"

	apperrors "recipebox/internal/errors"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	s := NewJWTService("test-secret", time.Minute)

	token, err := s.Issue("user@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := s.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", subject)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	s := NewJWTService("test-secret", time.Minute)

	// hand-craft a token with the same secret whose expiry is in the past
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = s.Verify(expired)
	assert.ErrorIs(t, err, apperrors.ErrExpiredToken)
}

func TestJWTService_InvalidToken(t *testing.T) {
	s := NewJWTService("test-secret", time.Minute)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not.a.token"},
		{name: "empty", token: ""},
		{
			name: "wrong secret",
			token: func() string {
				other := NewJWTService("other-secret", time.Minute)
				token, _ := other.Issue("user@example.com")
				return token
			}(),
		},
		{
			name: "empty subject",
			token: func() string {
				token, _ := s.Issue("")
				return token
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Verify(tt.token)
			assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
		})
	}
}

func TestNewJWTService_TTLFallback(t *testing.T) {
	s := NewJWTService("test-secret", 0)

	token, err := s.Issue("user@example.com")
	assert.NoError(t, err)

	subject, err := s.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", subject)
}
