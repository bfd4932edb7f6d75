// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

package auth_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blessy228/daily-scripture-path/internal/auth"
	"github.com/blessy228/daily-scripture-path/internal/platform/apperr"
	"github.com/blessy228/daily-scripture-path/internal/platform/sec"
)

// memUserRepo is an in-memory UserRepository for service tests.
type memUserRepo struct {
	users map[string]*auth.User // keyed by ID
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*auth.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *auth.User) error {
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*auth.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	clone := *user
	return &clone, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("User")
}

// memSessionRepo is an in-memory SessionRepository.
type memSessionRepo struct {
	sessions map[string]string
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]string)}
}

func (r *memSessionRepo) Set(_ context.Context, token, userID string, _ time.Duration) error {
	r.sessions[token] = userID
	return nil
}

func (r *memSessionRepo) Get(_ context.Context, token string) (string, error) {
	userID, ok := r.sessions[token]
	if !ok {
		return "", apperr.NotFound("Session")
	}
	return userID, nil
}

func (r *memSessionRepo) Delete(_ context.Context, token string) error {
	delete(r.sessions, token)
	return nil
}

// stubTokenProvider produces predictable access tokens.
type stubTokenProvider struct {
	issued int
}

func (p *stubTokenProvider) GenerateAccessToken(userID, _, _ string, _ time.Duration) (string, error) {
	p.issued++
	return fmt.Sprintf("access-%s-%d", userID, p.issued), nil
}

func newTestService() (*auth.Service, *memUserRepo, *memSessionRepo) {
	users := newMemUserRepo()
	sessions := newMemSessionRepo()
	return auth.NewService(users, sessions, &stubTokenProvider{}), users, sessions
}

func registerInput() auth.RegisterInput {
	return auth.RegisterInput{
		Username: "reader",
		Email:    "reader@example.com",
		Password: "correct-horse",
	}
}

/*
TestService_Register creates a member account with a hashed password.
*/
func TestService_Register(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	user, err := service.Register(ctx, registerInput())
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, sec.RoleMember, user.Role)

	// Display name defaults to the username.
	assert.Equal(t, "reader", user.DisplayName)

	// The password is stored hashed, never verbatim.
	assert.NotEqual(t, "correct-horse", user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("correct-horse", user.PasswordHash))
}

/*
TestService_Register_Conflicts rejects duplicate emails and usernames.
*/
func TestService_Register_Conflicts(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	_, err := service.Register(ctx, registerInput())
	require.NoError(t, err)

	// Same email, different username.
	duplicate := registerInput()
	duplicate.Username = "other"
	_, err = service.Register(ctx, duplicate)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperr.As(err).HTTPStatus)

	// Same username, different email.
	duplicate = registerInput()
	duplicate.Email = "other@example.com"
	_, err = service.Register(ctx, duplicate)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperr.As(err).HTTPStatus)
}

/*
TestService_Register_Validation rejects malformed input before any lookup.
*/
func TestService_Register_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*auth.RegisterInput)
	}{
		{"short_username", func(i *auth.RegisterInput) { i.Username = "ab" }},
		{"bad_email", func(i *auth.RegisterInput) { i.Email = "not-an-email" }},
		{"short_password", func(i *auth.RegisterInput) { i.Password = "short" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newTestService()
			input := registerInput()
			tt.mutate(&input)

			_, err := service.Register(context.Background(), input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}

/*
TestService_Login accepts either username or email and hides which part of
the credential pair was wrong.
*/
func TestService_Login(t *testing.T) {
	service, _, sessions := newTestService()
	ctx := context.Background()

	registered, err := service.Register(ctx, registerInput())
	require.NoError(t, err)

	// By email.
	user, pair, err := service.Login(ctx, "reader@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, user.ID, sessions.sessions[pair.RefreshToken])

	// By username.
	_, _, err = service.Login(ctx, "reader", "correct-horse")
	require.NoError(t, err)

	// Unknown identity and wrong password are indistinguishable.
	_, _, badUser := service.Login(ctx, "nobody", "correct-horse")
	_, _, badPass := service.Login(ctx, "reader", "wrong")
	require.Error(t, badUser)
	require.Error(t, badPass)
	assert.Equal(t, apperr.As(badUser).Message, apperr.As(badPass).Message)
}

/*
TestService_Refresh rotates the refresh token: the presented one is revoked
and a new pair is issued.
*/
func TestService_Refresh(t *testing.T) {
	service, _, sessions := newTestService()
	ctx := context.Background()

	_, err := service.Register(ctx, registerInput())
	require.NoError(t, err)
	_, pair, err := service.Login(ctx, "reader", "correct-horse")
	require.NoError(t, err)

	rotated, err := service.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, rotated.AccessToken)

	// The old token is single-use.
	_, err = service.Refresh(ctx, pair.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperr.As(err).HTTPStatus)

	// The new one still works.
	_, ok := sessions.sessions[rotated.RefreshToken]
	assert.True(t, ok)
}

/*
TestService_Logout revokes the session and tolerates unknown tokens.
*/
func TestService_Logout(t *testing.T) {
	service, _, sessions := newTestService()
	ctx := context.Background()

	_, err := service.Register(ctx, registerInput())
	require.NoError(t, err)
	_, pair, err := service.Login(ctx, "reader", "correct-horse")
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx, pair.RefreshToken))
	assert.Empty(t, sessions.sessions)

	// Logging out twice, or with no cookie at all, is not an error.
	assert.NoError(t, service.Logout(ctx, pair.RefreshToken))
	assert.NoError(t, service.Logout(ctx, ""))
}
