// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/integration/persistence"
)

const (
	tokenIssuer = "pocketledger"

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	resetTokenBytes = 32
	resetTokenTTL   = 1 * time.Hour
)

// tokenLifetimes holds the access/refresh durations for one session kind.
type tokenLifetimes struct {
	access  time.Duration
	refresh time.Duration
}

var (
	standardSession   = tokenLifetimes{access: 15 * time.Minute, refresh: 7 * 24 * time.Hour}
	rememberMeSession = tokenLifetimes{access: 7 * 24 * time.Hour, refresh: 30 * 24 * time.Hour}
)

// CustomClaims represents the custom claims for JWT tokens.
type CustomClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type tokenService struct {
	secret []byte
	tokens persistence.TokenRepository
}

// NewTokenService creates an HS256 JWT token service backed by the given
// repository for refresh token state.
func NewTokenService(secret string, tokenRepository persistence.TokenRepository) adapter.TokenService {
	return &tokenService{
		secret: []byte(secret),
		tokens: tokenRepository,
	}
}

// GenerateTokenPair issues an access/refresh pair and persists the refresh
// token so it can later be revoked.
func (s *tokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email, role string, rememberMe bool) (*adapter.TokenPair, error) {
	lifetimes := standardSession
	if rememberMe {
		lifetimes = rememberMeSession
	}

	accessToken, err := s.sign(userID, email, role, tokenTypeAccess, lifetimes.access)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.sign(userID, email, role, tokenTypeRefresh, lifetimes.refresh)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiresAt := time.Now().UTC().Add(lifetimes.refresh)
	if err := s.tokens.SaveRefreshToken(ctx, refreshToken, userID, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return &adapter.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *tokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return s.validate(token, tokenTypeAccess)
}

func (s *tokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return s.validate(token, tokenTypeRefresh)
}

func (s *tokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	return s.tokens.InvalidateRefreshToken(ctx, token)
}

func (s *tokenService) InvalidateAllUserTokens(ctx context.Context, userID uuid.UUID) error {
	return s.tokens.InvalidateAllUserRefreshTokens(ctx, userID)
}

func (s *tokenService) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	return s.tokens.IsRefreshTokenValid(ctx, token)
}

// validate checks the signature and that the token carries the expected
// token_type claim, so a refresh token can never pass as an access token.
func (s *tokenService) validate(tokenString, wantType string) (*adapter.TokenClaims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != wantType {
		return nil, fmt.Errorf("invalid token type: expected %s token", wantType)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	return &adapter.TokenClaims{
		UserID:    userID,
		Email:     claims.Email,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *tokenService) sign(userID uuid.UUID, email, role, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := CustomClaims{
		UserID:    userID.String(),
		Email:     email,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *tokenService) parse(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

type passwordResetTokenService struct {
	tokens persistence.TokenRepository
}

// NewPasswordResetTokenService creates a service issuing opaque single-use
// password reset tokens.
func NewPasswordResetTokenService(tokenRepository persistence.TokenRepository) adapter.PasswordResetTokenService {
	return &passwordResetTokenService{tokens: tokenRepository}
}

// GenerateResetToken mints a random hex token valid for one hour.
func (s *passwordResetTokenService) GenerateResetToken(ctx context.Context, userID uuid.UUID, email string) (*adapter.PasswordResetToken, error) {
	raw := make([]byte, resetTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("failed to generate random token: %w", err)
	}
	token := hex.EncodeToString(raw)
	expiresAt := time.Now().UTC().Add(resetTokenTTL)

	if err := s.tokens.SavePasswordResetToken(ctx, token, userID, email, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to save reset token: %w", err)
	}

	return &adapter.PasswordResetToken{
		Token:     token,
		UserID:    userID,
		Email:     email,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *passwordResetTokenService) ValidateResetToken(ctx context.Context, token string) (*adapter.PasswordResetToken, error) {
	stored, err := s.tokens.GetPasswordResetToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get reset token: %w", err)
	}
	if stored == nil {
		return nil, fmt.Errorf("invalid or expired reset token")
	}

	return &adapter.PasswordResetToken{
		Token:     stored.Token,
		UserID:    stored.UserID,
		Email:     stored.Email,
		ExpiresAt: stored.ExpiresAt,
	}, nil
}

func (s *passwordResetTokenService) InvalidateResetToken(ctx context.Context, token string) error {
	return s.tokens.InvalidatePasswordResetToken(ctx, token)
}
