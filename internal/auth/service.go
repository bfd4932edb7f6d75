// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/blessy228/daily-scripture-path/internal/platform/apperr"
	"github.com/blessy228/daily-scripture-path/internal/platform/sec"
	"github.com/blessy228/daily-scripture-path/internal/platform/validate"
	"github.com/blessy228/daily-scripture-path/pkg/uuidv7"
)

// TokenProvider defines the contract for generating access tokens.
type TokenProvider interface {
	GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error)
}

// Service implements user authentication use cases.
type Service struct {
	users         UserRepository
	sessions      SessionRepository
	tokenProvider TokenProvider
}

// NewService constructs a [Service] with its dependencies.
func NewService(users UserRepository, sessions SessionRepository, tokenProvider TokenProvider) *Service {
	return &Service{
		users:         users,
		sessions:      sessions,
		tokenProvider: tokenProvider,
	}
}

// # Registration

// RegisterInput holds the data required to enroll a new reader.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	DisplayName string
}

func (input RegisterInput) validate() error {
	v := &validate.Validator{}
	v.Required(FieldUsername, input.Username)
	v.MinLen(FieldUsername, input.Username, MinUsernameLen)
	v.MaxLen(FieldUsername, input.Username, MaxUsernameLen)
	v.Email(FieldEmail, input.Email)
	v.MinLen(FieldPassword, input.Password, MinPasswordLen)
	v.MaxLen(FieldPassword, input.Password, MaxPasswordLen)
	return v.Err()
}

// Register validates, hashes, and persists a brand new user account.
func (service *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	// Uniqueness checks produce client-safe Conflict errors.
	if _, err := service.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}
	if _, err := service.users.FindByUsername(ctx, input.Username); err == nil {
		return nil, apperr.Conflict("Username is already taken")
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	displayName := input.DisplayName
	if displayName == "" {
		displayName = input.Username
	}

	now := time.Now()
	user := &User{
		ID:           uuidv7.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		DisplayName:  displayName,
		Role:         sec.RoleMember,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := service.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// # Login & Sessions

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"-"` // Delivered via HTTP-only cookie, never in the body.
}

// Login verifies credentials and opens a new refresh session.
//
// The login identifier may be either the username or the email address.
func (service *Service) Login(ctx context.Context, login, password string) (*User, *TokenPair, error) {
	user, err := service.users.FindByEmail(ctx, login)
	if err != nil {
		user, err = service.users.FindByUsername(ctx, login)
	}
	if err != nil {
		// Same failure for unknown identity and bad password, so the
		// endpoint cannot be used to probe for registered accounts.
		return nil, nil, apperr.Unauthorized("Invalid credentials")
	}

	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		return nil, nil, apperr.Unauthorized("Invalid credentials")
	}

	pair, err := service.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh rotates a refresh session and issues a fresh access token.
func (service *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := service.sessions.Get(ctx, refreshToken)
	if err != nil {
		return nil, apperr.Unauthorized("Session is invalid or expired")
	}

	user, err := service.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Unauthorized("Session is invalid or expired")
	}

	// Rotation: the presented token is single-use.
	if err := service.sessions.Delete(ctx, refreshToken); err != nil {
		return nil, err
	}

	return service.issueTokens(ctx, user)
}

// Logout revokes a refresh session. Revoking an unknown token is not an error.
func (service *Service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return service.sessions.Delete(ctx, refreshToken)
}

// Me returns the account behind an authenticated user ID.
func (service *Service) Me(ctx context.Context, userID string) (*User, error) {
	return service.users.FindByID(ctx, userID)
}

// issueTokens signs an access token and opens a refresh session.
func (service *Service) issueTokens(ctx context.Context, user *User) (*TokenPair, error) {
	accessToken, err := service.tokenProvider.GenerateAccessToken(
		user.ID, user.Username, string(user.Role), AccessTokenTTL,
	)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	refreshToken, err := generateRefreshToken()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if err := service.sessions.Set(ctx, refreshToken, user.ID, RefreshTokenTTL); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// generateRefreshToken produces a cryptographically random opaque token.
func generateRefreshToken() (string, error) {
	buffer := make([]byte, RefreshTokenLength)
	if _, err := rand.Read(buffer); err != nil {
		return "", fmt.Errorf("auth: failed to generate refresh token: %w", err)
	}
	return hex.EncodeToString(buffer), nil
}
