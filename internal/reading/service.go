// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

package reading

import (
	"context"
	"log/slog"
	"time"

	"github.com/blessy228/daily-scripture-path/internal/canon"
	"github.com/blessy228/daily-scripture-path/pkg/pagination"
	"github.com/blessy228/daily-scripture-path/pkg/uuidv7"
)

// Service implements the reading ledger use cases.
//
// Every mutation ends with a full streak recompute over the fresh ledger
// snapshot: the stored [StreakState] is a cache of [RecomputeStreak], never
// an independently maintained counter.
type Service struct {
	entries EntryRepository
	streaks StreakRepository
	logger  *slog.Logger

	// now is the calendar clock; injectable for deterministic tests.
	now func() time.Time
}

// NewService constructs a [Service] with its storage dependencies.
func NewService(entries EntryRepository, streaks StreakRepository, logger *slog.Logger) *Service {
	return &Service{
		entries: entries,
		streaks: streaks,
		logger:  logger,
		now:     time.Now,
	}
}

// # Ledger Mutations

// LogInput holds the data required to log or replace a reading interval.
type LogInput struct {
	ReadingDate  Date
	BookName     string
	StartChapter int
	EndChapter   int
	StartVerse   *int
	EndVerse     *int
}

// LogReading validates and persists a new ledger entry, then refreshes the
// streak cache.
func (service *Service) LogReading(ctx context.Context, userID string, input LogInput) (*Entry, error) {
	if _, err := validateInterval(input.BookName, input.StartChapter, input.EndChapter); err != nil {
		return nil, err
	}

	entry := &Entry{
		ID:            uuidv7.New(),
		UserID:        userID,
		ReadingDate:   input.ReadingDate,
		BookName:      input.BookName,
		StartChapter:  input.StartChapter,
		EndChapter:    input.EndChapter,
		StartVerse:    input.StartVerse,
		EndVerse:      input.EndVerse,
		ChaptersCount: input.EndChapter - input.StartChapter + 1,
		CreatedAt:     service.now(),
	}

	if err := service.entries.Create(ctx, entry); err != nil {
		return nil, err
	}

	if _, err := service.refreshStreak(ctx, userID); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "reading_logged",
		slog.String("user_id", userID),
		slog.String("book", entry.BookName),
		slog.Int("chapters", entry.ChaptersCount),
	)

	return entry, nil
}

// EditReading replaces an existing entry wholesale, then refreshes the
// streak cache. Edits may change the reading date, so the incremental
// streak shortcut is never applicable here.
func (service *Service) EditReading(ctx context.Context, userID, entryID string, input LogInput) (*Entry, error) {
	if _, err := validateInterval(input.BookName, input.StartChapter, input.EndChapter); err != nil {
		return nil, err
	}

	entry, err := service.entries.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	entry.ReadingDate = input.ReadingDate
	entry.BookName = input.BookName
	entry.StartChapter = input.StartChapter
	entry.EndChapter = input.EndChapter
	entry.StartVerse = input.StartVerse
	entry.EndVerse = input.EndVerse
	entry.ChaptersCount = input.EndChapter - input.StartChapter + 1

	if err := service.entries.Update(ctx, entry); err != nil {
		return nil, err
	}

	if _, err := service.refreshStreak(ctx, userID); err != nil {
		return nil, err
	}

	return entry, nil
}

// DeleteReading removes an entry, then refreshes the streak cache.
func (service *Service) DeleteReading(ctx context.Context, userID, entryID string) error {
	if err := service.entries.Delete(ctx, userID, entryID); err != nil {
		return err
	}

	_, err := service.refreshStreak(ctx, userID)
	return err
}

// refreshStreak reloads the full ledger, folds it into a fresh streak
// state, and persists the result.
func (service *Service) refreshStreak(ctx context.Context, userID string) (StreakState, error) {
	ledger, err := service.entries.AllByUser(ctx, userID)
	if err != nil {
		return StreakState{}, err
	}

	previous, err := service.streaks.Get(ctx, userID)
	if err != nil {
		return StreakState{}, err
	}

	state := RecomputeStreak(ledger, previous, NewDate(service.now()))
	if err := service.streaks.Upsert(ctx, userID, state); err != nil {
		return StreakState{}, err
	}
	return state, nil
}

// # Queries

// ListReadings returns one page of the owner's ledger, newest first.
func (service *Service) ListReadings(ctx context.Context, userID string, params pagination.Params) ([]Entry, pagination.Meta, error) {
	entries, total, err := service.entries.ListByUser(ctx, userID, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return entries, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// Streak returns the stored streak state.
func (service *Service) Streak(ctx context.Context, userID string) (StreakState, error) {
	return service.streaks.Get(ctx, userID)
}

// Overview is the headline progress summary.
type Overview struct {
	ChaptersRead       int         `json:"chapters_read"`
	TotalChapters      int         `json:"total_chapters"`
	ProgressPercentage int         `json:"progress_percentage"`
	ChaptersRemaining  int         `json:"chapters_remaining"`
	DaysRemaining      int         `json:"days_remaining"`
	DailyTarget        int         `json:"daily_target"`
	Streak             StreakState `json:"streak"`
}

// Overview computes the lifetime totals and the year-end pacing numbers.
func (service *Service) Overview(ctx context.Context, userID string) (*Overview, error) {
	ledger, err := service.entries.AllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	streak, err := service.streaks.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := NewDate(service.now())
	chaptersRead := TotalChaptersRead(Coverage(ledger))
	remaining := ChaptersRemaining(chaptersRead)
	daysRemaining := DaysRemaining(today)

	return &Overview{
		ChaptersRead:       chaptersRead,
		TotalChapters:      canon.TotalChapters,
		ProgressPercentage: ProgressPercentage(chaptersRead),
		ChaptersRemaining:  remaining,
		DaysRemaining:      daysRemaining,
		DailyTarget:        DailyTarget(remaining, daysRemaining),
		Streak:             streak,
	}, nil
}

// Stats is the full analytics dashboard payload.
type Stats struct {
	TopBooks         []BookProgress    `json:"top_books"`
	CompletedBooks   []BookProgress    `json:"completed_books"`
	InProgressBooks  []BookProgress    `json:"in_progress_books"`
	BooksStarted     int               `json:"books_started"`
	BooksCompleted   int               `json:"books_completed"`
	OldTestament     TestamentProgress `json:"old_testament"`
	NewTestament     TestamentProgress `json:"new_testament"`
	Weekly           []HistogramBucket `json:"weekly"`
	ThisWeekChapters int               `json:"this_week_chapters"`
}

// topBooksLimit caps the "top progress" view, matching the dashboard layout.
const topBooksLimit = 10

// Stats folds the ledger into the coverage, testament, and weekly views.
func (service *Service) Stats(ctx context.Context, userID string) (*Stats, error) {
	ledger, err := service.entries.AllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := service.now()
	covered := Coverage(ledger)
	started := startedBooks(covered)
	completed := CompletedBooks(covered)

	return &Stats{
		TopBooks:         TopBooks(covered, topBooksLimit),
		CompletedBooks:   completed,
		InProgressBooks:  InProgressBooks(covered),
		BooksStarted:     len(started),
		BooksCompleted:   len(completed),
		OldTestament:     TestamentSummary(covered, canon.Old),
		NewTestament:     TestamentSummary(covered, canon.New),
		Weekly:           WeeklyHistogram(now, ledger),
		ThisWeekChapters: ThisWeekChapters(now, ledger),
	}, nil
}

// Plan is the materialized pacing plan payload.
type Plan struct {
	DailyTarget int       `json:"daily_target"`
	Days        []PlanDay `json:"days"`
}

// Plan builds a day-by-day preview of the suggested pace, starting today.
func (service *Service) Plan(ctx context.Context, userID string, days int) (*Plan, error) {
	ledger, err := service.entries.AllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := NewDate(service.now())
	preview := PlanPreview(days, today, ledger)

	target := 0
	if len(preview) > 0 {
		target = preview[0].SuggestedTarget
	}

	return &Plan{DailyTarget: target, Days: preview}, nil
}
