// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

/*
Package auth implements the user identity and session management layer.

It defines the core domain entities (User, Session) and the logic for
registration, login, and refresh-token session lifecycle.

# Architecture

  - Service: orchestrates registration, login, and token rotation.
  - UserRepository: PostgreSQL persistence for accounts.
  - SessionRepository: Redis persistence for volatile refresh sessions.
  - Security: bcrypt password hashing and RS256-signed JWTs via [sec].
*/
package auth

import (
	"time"

	"github.com/blessy228/daily-scripture-path/internal/platform/sec"
)

// # Domain Entities

// User represents a registered reader.
type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	DisplayName  string       `json:"display_name"`
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldUsername    = "username"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldDisplayName = "display_name"
	FieldLogin       = "login"
)

// # Constraints

const (
	MinUsernameLen = 3
	MaxUsernameLen = 32
	MinPasswordLen = 8
	MaxPasswordLen = 72 // bcrypt input limit
)
