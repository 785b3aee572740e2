package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/NhatNguyen1502/ecommerce-services/internal/entity"
	"github.com/NhatNguyen1502/ecommerce-services/internal/repo"
	"github.com/NhatNguyen1502/ecommerce-services/internal/token"
)

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrRefreshTokenRequired = errors.New("refresh token is required")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidRefreshToken  = errors.New("invalid refresh token")
	ErrTokenAlreadyInvalid  = errors.New("token has already been invalidated")
)

type UserRepository interface {
	GetActiveUserByEmail(ctx context.Context, email string) (entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (entity.User, error)
	UpdateRefreshToken(ctx context.Context, userID uuid.UUID, token *string) error
}

type Auth struct {
	log      *slog.Logger
	userRepo UserRepository
	tokens   *token.Service
}

func NewAuth(log *slog.Logger, userRepo UserRepository, tokens *token.Service) *Auth {
	return &Auth{
		log:      log,
		userRepo: userRepo,
		tokens:   tokens,
	}
}

type UserInfo struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type SignInResult struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	User         UserInfo `json:"user"`
}

// RoleLabel maps the stored role to the coarse label carried in access tokens.
func RoleLabel(user entity.User) string {
	if user.Role.Name == entity.RoleAdmin {
		return "admin"
	}
	return "user"
}

// SignIn verifies credentials, issues an access/refresh token pair and
// overwrites the user's stored refresh token with the new one.
func (auth *Auth) SignIn(ctx context.Context, email, password string) (SignInResult, error) {
	const op = "auth.SignIn"

	log := auth.log.With(slog.String("op", op), slog.String("email", email))
	log.Info("attempting to sign in user")

	user, err := auth.userRepo.GetActiveUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			log.Info("email not found")
			return SignInResult{}, ErrInvalidCredentials
		}

		log.Error("failed to find user", "error", err)
		return SignInResult{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Info("incorrect password")
		return SignInResult{}, ErrInvalidCredentials
	}

	role := RoleLabel(user)

	accessToken, err := auth.tokens.CreateToken(user.ID, user.Email, role, false)
	if err != nil {
		log.Error("failed to create access token", "error", err)
		return SignInResult{}, fmt.Errorf("%s: %w", op, err)
	}

	refreshToken, err := auth.tokens.CreateToken(user.ID, user.Email, role, true)
	if err != nil {
		log.Error("failed to create refresh token", "error", err)
		return SignInResult{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := auth.userRepo.UpdateRefreshToken(ctx, user.ID, &refreshToken); err != nil {
		log.Error("failed to store refresh token", "error", err)
		return SignInResult{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("successfully signed in")

	return SignInResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         UserInfo{ID: user.ID, Email: user.Email},
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The stored
// refresh token is not rotated here; only sign-in rotates it.
func (auth *Auth) Refresh(ctx context.Context, refreshToken string) (string, error) {
	const op = "auth.Refresh"

	log := auth.log.With(slog.String("op", op))
	log.Info("refreshing access token")

	if refreshToken == "" {
		return "", ErrRefreshTokenRequired
	}

	// Refresh tokens carry no userId claim; the subject identifies the user.
	email, err := auth.tokens.ExtractEmailFromToken(refreshToken)
	if err != nil {
		log.Warn("failed to decode refresh token", "error", err)
		return "", err
	}

	user, err := auth.userRepo.GetActiveUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			log.Info("user not found")
			return "", ErrUserNotFound
		}

		log.Error("failed to find user", "error", err)
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		log.Warn("refresh token does not match stored token")
		return "", ErrInvalidRefreshToken
	}

	isRefresh, err := auth.tokens.IsRefreshToken(refreshToken)
	if err != nil || !isRefresh {
		log.Warn("token is not a refresh token")
		return "", ErrInvalidRefreshToken
	}

	accessToken, err := auth.tokens.CreateToken(user.ID, user.Email, RoleLabel(user), false)
	if err != nil {
		log.Error("failed to create access token", "error", err)
		return "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("successfully refreshed access token")

	return accessToken, nil
}

// Logout revokes the supplied token and clears the user's stored refresh
// token. header may carry an optional "Bearer " prefix.
func (auth *Auth) Logout(ctx context.Context, header string) error {
	const op = "auth.Logout"

	log := auth.log.With(slog.String("op", op))

	tokenStr := strings.TrimPrefix(header, "Bearer ")

	invalid, err := auth.tokens.IsTokenInvalid(ctx, tokenStr)
	if err != nil {
		log.Error("failed to check revocation set", "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}
	if invalid {
		return ErrTokenAlreadyInvalid
	}

	userID, err := auth.tokens.ExtractUserIDFromToken(tokenStr)
	if err != nil {
		log.Warn("failed to decode token", "error", err)
		return err
	}

	if err := auth.tokens.InvalidateToken(ctx, tokenStr); err != nil {
		log.Error("failed to revoke token", "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := auth.userRepo.GetUserByID(ctx, userID); err == nil {
		if err := auth.userRepo.UpdateRefreshToken(ctx, userID, nil); err != nil {
			log.Error("failed to clear refresh token", "error", err)
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	log.Info("successfully logged out")

	return nil
}
