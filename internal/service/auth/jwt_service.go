package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTService issues and validates the HS256 session tokens that guard the
// API routes.
type JWTService interface {
	// GenerateToken creates a signed token for the given user.
	GenerateToken(userID uuid.UUID, role string) (string, error)

	// ValidateToken verifies the token signature and expiry, returning
	// the embedded claims. Returns ErrExpiredToken or ErrInvalidToken on
	// failure.
	ValidateToken(tokenString string) (*Claims, error)
}

// Claims are the JWT claims carried by a session token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// hmacJWTService implements JWTService with an HMAC-SHA256 signature.
type hmacJWTService struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

// NewJWTService creates a JWTService signing with the given secret.
// Tokens expire after the given lifetime.
func NewJWTService(secret string, lifetime time.Duration) JWTService {
	return &hmacJWTService{
		secret:   []byte(secret),
		lifetime: lifetime,
		now:      time.Now,
	}
}

// GenerateToken implements JWTService.GenerateToken
func (s *hmacJWTService) GenerateToken(userID uuid.UUID, role string) (string, error) {
	now := s.now().UTC()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken implements JWTService.ValidateToken
func (s *hmacJWTService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, fmt.Errorf("%w: malformed subject", ErrInvalidToken)
	}

	return claims, nil
}
