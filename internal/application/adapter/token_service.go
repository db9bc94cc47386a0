// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair represents an access and refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims represents the claims contained in a JWT token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	Role      string
	ExpiresAt time.Time
}

// TokenService issues and validates session tokens. Refresh tokens carry
// server-side state so they can be revoked individually or per user.
type TokenService interface {
	// GenerateTokenPair issues a pair; rememberMe extends both lifetimes.
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, email, role string, rememberMe bool) (*TokenPair, error)

	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)

	InvalidateRefreshToken(ctx context.Context, token string) error
	InvalidateAllUserTokens(ctx context.Context, userID uuid.UUID) error

	// IsRefreshTokenValid reports whether the token exists and has not been
	// revoked or expired server-side.
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)
}

// PasswordResetToken represents a password reset token.
type PasswordResetToken struct {
	Token     string
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// PasswordResetTokenService issues and consumes single-use password reset
// tokens.
type PasswordResetTokenService interface {
	GenerateResetToken(ctx context.Context, userID uuid.UUID, email string) (*PasswordResetToken, error)
	ValidateResetToken(ctx context.Context, token string) (*PasswordResetToken, error)
	InvalidateResetToken(ctx context.Context, token string) error
}
