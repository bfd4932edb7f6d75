// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
}

// # Session Data Access

// SessionRepository stores volatile refresh-token sessions.
//
// Sessions expire on their own via TTL; logout and rotation delete them
// explicitly.
type SessionRepository interface {
	// Set binds a refresh token to a user ID for ttl.
	Set(ctx context.Context, token, userID string, ttl time.Duration) error
	// Get returns the user ID bound to a refresh token, or a NotFound
	// error when the token is absent or expired.
	Get(ctx context.Context, token string) (string, error)
	// Delete revokes a refresh token.
	Delete(ctx context.Context, token string) error
}
