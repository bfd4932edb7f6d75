// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

package note_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blessy228/daily-scripture-path/internal/note"
	"github.com/blessy228/daily-scripture-path/internal/platform/apperr"
	"github.com/blessy228/daily-scripture-path/internal/platform/dberr"
	"github.com/blessy228/daily-scripture-path/pkg/pagination"
	"github.com/blessy228/daily-scripture-path/pkg/pointer"
)

// memRepo is an in-memory Repository for service tests.
type memRepo struct {
	notes map[string]*note.Note
	order []string
}

func newMemRepo() *memRepo {
	return &memRepo{notes: make(map[string]*note.Note)}
}

func (r *memRepo) Create(_ context.Context, n *note.Note) error {
	clone := *n
	r.notes[n.ID] = &clone
	r.order = append(r.order, n.ID)
	return nil
}

func (r *memRepo) Update(_ context.Context, n *note.Note) error {
	if _, ok := r.notes[n.ID]; !ok {
		return dberr.ErrNotFound
	}
	clone := *n
	r.notes[n.ID] = &clone
	return nil
}

func (r *memRepo) Delete(_ context.Context, userID, noteID string) error {
	stored, ok := r.notes[noteID]
	if !ok || stored.UserID != userID {
		return dberr.ErrNotFound
	}
	delete(r.notes, noteID)
	return nil
}

func (r *memRepo) GetByID(_ context.Context, userID, noteID string) (*note.Note, error) {
	stored, ok := r.notes[noteID]
	if !ok || stored.UserID != userID {
		return nil, dberr.ErrNotFound
	}
	clone := *stored
	return &clone, nil
}

func (r *memRepo) ListByUser(_ context.Context, userID string, filter note.Filter, _ pagination.Params) ([]note.Note, int, error) {
	var out []note.Note
	for _, id := range r.order {
		stored, ok := r.notes[id]
		if !ok || stored.UserID != userID {
			continue
		}
		if len(filter.Books) > 0 {
			if stored.BookName == nil {
				continue
			}
			matched := false
			for _, book := range filter.Books {
				if *stored.BookName == book {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		out = append(out, *stored)
	}
	return out, len(out), nil
}

func newTestService() (*note.Service, *memRepo) {
	repo := newMemRepo()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return note.NewService(repo, logger), repo
}

const testUser = "user-1"

/*
TestService_CreateNote persists a note with an optional passage anchor.
*/
func TestService_CreateNote(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	created, err := service.CreateNote(ctx, testUser, note.Input{
		Content:  "The creation account.",
		BookName: pointer.To("Genesis"),
		Chapter:  pointer.To(1),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, testUser, created.UserID)
	assert.Equal(t, "Genesis", *created.BookName)

	// Free-floating notes need no anchor at all.
	floating, err := service.CreateNote(ctx, testUser, note.Input{Content: "General thought."})
	require.NoError(t, err)
	assert.Nil(t, floating.BookName)
}

/*
TestService_CreateNote_Validation covers content and anchor rules.
*/
func TestService_CreateNote_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input note.Input
	}{
		{"empty_content", note.Input{Content: ""}},
		{"oversized_content", note.Input{Content: strings.Repeat("a", note.MaxContentLen+1)}},
		{"unknown_book", note.Input{Content: "x", BookName: pointer.To("Enoch")}},
		{"chapter_out_of_bounds", note.Input{Content: "x", BookName: pointer.To("Jude"), Chapter: pointer.To(2)}},
		{"chapter_without_book", note.Input{Content: "x", Chapter: pointer.To(3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService()

			_, err := service.CreateNote(context.Background(), testUser, tt.input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
			assert.Empty(t, repo.notes)
		})
	}
}

/*
TestService_UpdateAndDelete exercises ownership-scoped mutation.
*/
func TestService_UpdateAndDelete(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	created, err := service.CreateNote(ctx, testUser, note.Input{Content: "Draft."})
	require.NoError(t, err)

	updated, err := service.UpdateNote(ctx, testUser, created.ID, note.Input{
		Content:  "Final.",
		BookName: pointer.To("Psalms"),
		Chapter:  pointer.To(23),
	})
	require.NoError(t, err)
	assert.Equal(t, "Final.", updated.Content)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))

	// Another user cannot touch it.
	_, err = service.UpdateNote(ctx, "intruder", created.ID, note.Input{Content: "Hijack."})
	assert.ErrorIs(t, err, dberr.ErrNotFound)
	assert.ErrorIs(t, service.DeleteNote(ctx, "intruder", created.ID), dberr.ErrNotFound)

	require.NoError(t, service.DeleteNote(ctx, testUser, created.ID))
	assert.ErrorIs(t, service.DeleteNote(ctx, testUser, created.ID), dberr.ErrNotFound)
}

/*
TestService_ListNotes applies the book filter.
*/
func TestService_ListNotes(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	for _, book := range []string{"Genesis", "Exodus", "Genesis"} {
		_, err := service.CreateNote(ctx, testUser, note.Input{
			Content:  "On " + book,
			BookName: pointer.To(book),
			Chapter:  pointer.To(1),
		})
		require.NoError(t, err)
	}

	all, meta, err := service.ListNotes(ctx, testUser, note.Filter{}, pagination.Params{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, 3, meta.Total)

	filtered, _, err := service.ListNotes(ctx, testUser, note.Filter{Books: []string{"Genesis"}}, pagination.Params{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, filtered, 2)
}
