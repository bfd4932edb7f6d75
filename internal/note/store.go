// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

package note

import (
	"context"

	"github.com/blessy228/daily-scripture-path/pkg/pagination"
)

// Filter narrows a note listing. Zero value matches everything.
type Filter struct {
	// Books restricts results to notes anchored to any of these book names.
	Books []string
}

// Repository abstracts note persistence for one owner.
type Repository interface {
	Create(ctx context.Context, note *Note) error
	Update(ctx context.Context, note *Note) error
	Delete(ctx context.Context, userID, noteID string) error
	GetByID(ctx context.Context, userID, noteID string) (*Note, error)

	// ListByUser returns one page of notes ordered by creation time
	// descending, plus the total count.
	ListByUser(ctx context.Context, userID string, filter Filter, params pagination.Params) ([]Note, int, error)
}
