// Package token issues and verifies the bearer tokens used by the API:
// short-lived access tokens carrying the user's id and role, and longer-lived
// refresh tokens carrying only the subject.
package token

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/NhatNguyen1502/ecommerce-services/internal/revocation"
)

var (
	ErrTokenExpired   = errors.New("token is expired")
	ErrTokenMalformed = errors.New("token is malformed")
	ErrUnauthorized   = errors.New("authorization header is missing or invalid")
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

const bearerPrefix = "Bearer "

// Claims is the token payload. UserID and Role are set on access tokens only.
type Claims struct {
	UserID string `json:"userId,omitempty"`
	Role   string `json:"role,omitempty"`
	Type   string `json:"type"`
	jwt.RegisteredClaims
}

type Service struct {
	key        []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	revoked    revocation.Store
}

// NewService derives the signing key from secret once; all later verification
// uses the same key material.
func NewService(secret string, accessTTL, refreshTTL time.Duration, revoked revocation.Store) *Service {
	return &Service{
		key:        []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		revoked:    revoked,
	}
}

// CreateToken builds a signed token with subject email. Access tokens embed
// the user id and role; refresh tokens carry neither.
func (s *Service) CreateToken(userID uuid.UUID, email, role string, isRefresh bool) (string, error) {
	now := time.Now()

	claims := Claims{
		Type: TypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	if isRefresh {
		claims.Type = TypeRefresh
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.refreshTTL))
	} else {
		claims.UserID = userID.String()
		claims.Role = role
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// InvalidateToken adds the raw token string to the revocation set. Idempotent.
func (s *Service) InvalidateToken(ctx context.Context, token string) error {
	return s.revoked.Add(ctx, token, s.remainingValidity(token))
}

// IsTokenInvalid reports whether the token has been explicitly revoked.
func (s *Service) IsTokenInvalid(ctx context.Context, token string) (bool, error) {
	return s.revoked.Contains(ctx, token)
}

// ValidateToken verifies the signature and reports whether the token is still
// within its validity window.
func (s *Service) ValidateToken(token string) (bool, error) {
	if _, err := s.DecodeToken(token); err != nil {
		return false, err
	}
	return true, nil
}

// IsRefreshToken decodes the token and inspects its type claim.
func (s *Service) IsRefreshToken(token string) (bool, error) {
	claims, err := s.DecodeToken(token)
	if err != nil {
		return false, err
	}
	return claims.Type == TypeRefresh, nil
}

// ExtractTokenFromHeader returns the raw token from an
// "Authorization: Bearer <token>" header value.
func (s *Service) ExtractTokenFromHeader(header string) (string, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", ErrUnauthorized
	}
	return header[len(bearerPrefix):], nil
}

// ExtractUserIDFromHeader parses the Authorization header and reads the
// userId claim of the carried token.
func (s *Service) ExtractUserIDFromHeader(header string) (uuid.UUID, error) {
	token, err := s.ExtractTokenFromHeader(header)
	if err != nil {
		return uuid.Nil, err
	}
	return s.ExtractUserIDFromToken(token)
}

func (s *Service) ExtractUserIDFromToken(token string) (uuid.UUID, error) {
	claims, err := s.DecodeToken(token)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrTokenMalformed
	}
	return id, nil
}

func (s *Service) ExtractEmailFromToken(token string) (string, error) {
	claims, err := s.DecodeToken(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// DecodeToken verifies the signature and standard claims and returns the
// payload. An expired token fails with ErrTokenExpired; any other failure is
// normalized to ErrTokenMalformed.
func (s *Service) DecodeToken(token string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}

	if !parsed.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}

// remainingValidity reads the exp claim without validating it, so revocation
// entries can expire together with the token. Falls back to the refresh
// validity when the token cannot be read.
func (s *Service) remainingValidity(token string) time.Duration {
	claims := &Claims{}

	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	_, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.key, nil
	})
	if err != nil || claims.ExpiresAt == nil {
		return s.refreshTTL
	}
	return time.Until(claims.ExpiresAt.Time)
}
