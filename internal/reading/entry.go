// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

/*
Package reading implements the reading progress ledger and its analytics.

It is the computational heart of the application: a user's ledger of
date-stamped chapter intervals is folded into coverage maps, lifetime
progress totals, a consecutive-day streak, a year-end pacing plan, and a
weekly histogram.

# Architecture

  - Entities: [Entry] (one logged interval) and [StreakState] (derived cache).
  - Analytics: pure functions over an immutable ledger snapshot plus the
    static canon table and a caller-supplied clock. No I/O, no hidden state.
  - Service: orchestrates validation, persistence, and the streak recompute
    that follows every ledger mutation.
  - Storage: [EntryRepository] and [StreakRepository] abstract PostgreSQL.

Every aggregation is a total function of the full ledger; there is no
incremental mutation of shared state, so the analytics need no locking.
*/
package reading

import (
	"time"

	"github.com/blessy228/daily-scripture-path/internal/canon"
	"github.com/blessy228/daily-scripture-path/internal/platform/apperr"
	"github.com/blessy228/daily-scripture-path/internal/platform/validate"
)

// # Domain Entities

// Entry represents one logged reading interval: a contiguous chapter range
// of a single book read on a single calendar day.
type Entry struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	ReadingDate Date   `json:"reading_date"`
	BookName    string `json:"book_name"`

	// StartChapter and EndChapter are 1-indexed and inclusive,
	// with StartChapter <= EndChapter.
	StartChapter int `json:"start_chapter"`
	EndChapter   int `json:"end_chapter"`

	// Verse bounds are informational only; coverage math ignores them.
	StartVerse *int `json:"start_verse"`
	EndVerse   *int `json:"end_verse"`

	// ChaptersCount is derived: always EndChapter - StartChapter + 1.
	ChaptersCount int `json:"chapters_count"`

	CreatedAt time.Time `json:"created_at"`
}

// StreakState is the derived consecutive-day streak cache.
//
// It is never hand-edited: after every ledger mutation it is reproduced in
// full by [RecomputeStreak] and persisted through [StreakRepository].
// LongestStreak >= CurrentStreak holds at all times.
type StreakState struct {
	CurrentStreak   int   `json:"current_streak"`
	LongestStreak   int   `json:"longest_streak"`
	LastReadingDate *Date `json:"last_reading_date"`
}

// # Field Identifiers

const (
	FieldReadingDate  = "reading_date"
	FieldBookName     = "book_name"
	FieldStartChapter = "start_chapter"
	FieldEndChapter   = "end_chapter"
	FieldStartVerse   = "start_verse"
	FieldEndVerse     = "end_verse"
)

// # Validation

// validateInterval checks a book/chapter interval against the canon table.
//
// It is called before any derived field is computed and distinguishes the
// three rejection cases: unknown book, inverted range, and chapter numbers
// outside the book's bounds.
func validateInterval(bookName string, startChapter, endChapter int) (canon.Book, error) {
	book, ok := canon.ByName(bookName)
	if !ok {
		return canon.Book{}, apperr.ValidationError("Unknown book",
			apperr.FieldError{Field: FieldBookName, Message: "Not a book of the canon"})
	}

	if endChapter < startChapter {
		return canon.Book{}, apperr.ValidationError("Invalid chapter range",
			apperr.FieldError{Field: FieldEndChapter, Message: "End chapter must not be before start chapter"})
	}

	v := &validate.Validator{}
	v.Range(FieldStartChapter, startChapter, 1, book.Chapters)
	v.Range(FieldEndChapter, endChapter, 1, book.Chapters)
	if err := v.Err(); err != nil {
		return canon.Book{}, err
	}

	return book, nil
}
