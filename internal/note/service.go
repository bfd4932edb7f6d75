// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

package note

import (
	"context"
	"log/slog"
	"time"

	"github.com/blessy228/daily-scripture-path/internal/canon"
	"github.com/blessy228/daily-scripture-path/internal/platform/validate"
	"github.com/blessy228/daily-scripture-path/pkg/pagination"
	"github.com/blessy228/daily-scripture-path/pkg/pointer"
	"github.com/blessy228/daily-scripture-path/pkg/uuidv7"
)

// Service implements the note use cases.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a [Service] with its storage dependency.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Input holds the data for creating or updating a note.
type Input struct {
	Content  string
	BookName *string
	Chapter  *int
	EntryID  *string
}

// validate checks note content and the optional passage anchor.
func (input Input) validate() error {
	v := &validate.Validator{}
	v.Required(FieldContent, input.Content)
	v.MaxLen(FieldContent, input.Content, MaxContentLen)

	if input.BookName != nil {
		book, known := canon.ByName(*input.BookName)
		v.Custom(FieldBookName, !known, "Not a book of the canon")
		if known && input.Chapter != nil {
			chapter := pointer.Val(input.Chapter)
			v.Custom(FieldChapter, chapter < 1 || chapter > book.Chapters, "Chapter outside the book's bounds")
		}
	} else {
		v.Custom(FieldChapter, input.Chapter != nil, "A chapter anchor requires a book")
	}

	return v.Err()
}

// CreateNote validates and persists a new note.
func (service *Service) CreateNote(ctx context.Context, userID string, input Input) (*Note, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	note := &Note{
		ID:        uuidv7.New(),
		UserID:    userID,
		EntryID:   input.EntryID,
		BookName:  input.BookName,
		Chapter:   input.Chapter,
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := service.repo.Create(ctx, note); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "note_created", slog.String("user_id", userID))
	return note, nil
}

// UpdateNote replaces a note's content and anchor.
func (service *Service) UpdateNote(ctx context.Context, userID, noteID string, input Input) (*Note, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	note, err := service.repo.GetByID(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}

	note.Content = input.Content
	note.BookName = input.BookName
	note.Chapter = input.Chapter
	note.EntryID = input.EntryID
	note.UpdatedAt = time.Now()

	if err := service.repo.Update(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// DeleteNote removes a note.
func (service *Service) DeleteNote(ctx context.Context, userID, noteID string) error {
	return service.repo.Delete(ctx, userID, noteID)
}

// ListNotes returns one page of the user's notes, newest first.
func (service *Service) ListNotes(ctx context.Context, userID string, filter Filter, params pagination.Params) ([]Note, pagination.Meta, error) {
	notes, total, err := service.repo.ListByUser(ctx, userID, filter, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return notes, pagination.NewMeta(params.Page, params.Limit, total), nil
}
