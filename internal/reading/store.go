// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

package reading

import (
	"context"

	"github.com/blessy228/daily-scripture-path/pkg/pagination"
)

// EntryRepository abstracts persistence of reading entries for one owner.
type EntryRepository interface {
	Create(ctx context.Context, entry *Entry) error
	Update(ctx context.Context, entry *Entry) error
	Delete(ctx context.Context, userID, entryID string) error
	GetByID(ctx context.Context, userID, entryID string) (*Entry, error)

	// ListByUser returns one page of entries ordered by reading date
	// descending, plus the total entry count for pagination metadata.
	ListByUser(ctx context.Context, userID string, params pagination.Params) ([]Entry, int, error)

	// AllByUser returns the owner's complete ledger. Every analytics
	// operation folds over this full snapshot.
	AllByUser(ctx context.Context, userID string) ([]Entry, error)
}

// StreakRepository abstracts the derived streak cache.
type StreakRepository interface {
	// Get returns the stored state, or the zero state if none exists yet.
	Get(ctx context.Context, userID string) (StreakState, error)
	Upsert(ctx context.Context, userID string, state StreakState) error
}
