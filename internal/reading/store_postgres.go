// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

package reading

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/blessy228/daily-scripture-path/internal/platform/database/schema"
	"github.com/blessy228/daily-scripture-path/internal/platform/dberr"
	"github.com/blessy228/daily-scripture-path/pkg/pagination"
)

// # Entry Repository

// PostgresEntryRepository implements [EntryRepository] using pgx.
type PostgresEntryRepository struct {
	pool *pgxpool.Pool
}

// NewEntryRepository creates the PostgreSQL implementation of [EntryRepository].
func NewEntryRepository(pool *pgxpool.Pool) *PostgresEntryRepository {
	return &PostgresEntryRepository{pool: pool}
}

func (repository *PostgresEntryRepository) Create(ctx context.Context, entry *Entry) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		schema.ReadingProgress.Table,
		schema.ReadingProgress.ID, schema.ReadingProgress.UserID, schema.ReadingProgress.ReadingDate,
		schema.ReadingProgress.BookName, schema.ReadingProgress.StartChapter, schema.ReadingProgress.EndChapter,
		schema.ReadingProgress.StartVerse, schema.ReadingProgress.EndVerse,
		schema.ReadingProgress.ChaptersCount, schema.ReadingProgress.CreatedAt,
	)

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		entry.ReadingDate.Time,
		entry.BookName,
		entry.StartChapter,
		entry.EndChapter,
		entry.StartVerse,
		entry.EndVerse,
		entry.ChaptersCount,
		entry.CreatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "create_reading_entry")
	}
	return nil
}

func (repository *PostgresEntryRepository) Update(ctx context.Context, entry *Entry) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7
		WHERE %s = $8 AND %s = $9`,
		schema.ReadingProgress.Table,
		schema.ReadingProgress.ReadingDate, schema.ReadingProgress.BookName,
		schema.ReadingProgress.StartChapter, schema.ReadingProgress.EndChapter,
		schema.ReadingProgress.StartVerse, schema.ReadingProgress.EndVerse,
		schema.ReadingProgress.ChaptersCount,
		schema.ReadingProgress.ID, schema.ReadingProgress.UserID,
	)

	tag, err := repository.pool.Exec(ctx, query,
		entry.ReadingDate.Time,
		entry.BookName,
		entry.StartChapter,
		entry.EndChapter,
		entry.StartVerse,
		entry.EndVerse,
		entry.ChaptersCount,
		entry.ID,
		entry.UserID,
	)
	if err != nil {
		return dberr.Wrap(err, "update_reading_entry")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresEntryRepository) Delete(ctx context.Context, userID, entryID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.ReadingProgress.Table, schema.ReadingProgress.ID, schema.ReadingProgress.UserID)

	tag, err := repository.pool.Exec(ctx, query, entryID, userID)
	if err != nil {
		return dberr.Wrap(err, "delete_reading_entry")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresEntryRepository) GetByID(ctx context.Context, userID, entryID string) (*Entry, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s WHERE %s = $1 AND %s = $2`,
		schema.ReadingProgress.ID, schema.ReadingProgress.UserID, schema.ReadingProgress.ReadingDate,
		schema.ReadingProgress.BookName, schema.ReadingProgress.StartChapter, schema.ReadingProgress.EndChapter,
		schema.ReadingProgress.StartVerse, schema.ReadingProgress.EndVerse,
		schema.ReadingProgress.ChaptersCount, schema.ReadingProgress.CreatedAt,
		schema.ReadingProgress.Table,
		schema.ReadingProgress.ID, schema.ReadingProgress.UserID,
	)

	entry, err := scanEntry(repository.pool.QueryRow(ctx, query, entryID, userID))
	if err != nil {
		return nil, dberr.Wrap(err, "get_reading_entry")
	}
	return entry, nil
}

func (repository *PostgresEntryRepository) ListByUser(ctx context.Context, userID string, params pagination.Params) ([]Entry, int, error) {
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`,
		schema.ReadingProgress.Table, schema.ReadingProgress.UserID)

	total := 0
	if err := repository.pool.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_reading_entries")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s WHERE %s = $1
		ORDER BY %s DESC, %s DESC
		LIMIT $2 OFFSET $3`,
		schema.ReadingProgress.ID, schema.ReadingProgress.UserID, schema.ReadingProgress.ReadingDate,
		schema.ReadingProgress.BookName, schema.ReadingProgress.StartChapter, schema.ReadingProgress.EndChapter,
		schema.ReadingProgress.StartVerse, schema.ReadingProgress.EndVerse,
		schema.ReadingProgress.ChaptersCount, schema.ReadingProgress.CreatedAt,
		schema.ReadingProgress.Table, schema.ReadingProgress.UserID,
		schema.ReadingProgress.ReadingDate, schema.ReadingProgress.CreatedAt,
	)

	rows, err := repository.pool.Query(ctx, query, userID, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_reading_entries")
	}
	defer rows.Close()

	entries, err := collectEntries(rows)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (repository *PostgresEntryRepository) AllByUser(ctx context.Context, userID string) ([]Entry, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s WHERE %s = $1
		ORDER BY %s DESC`,
		schema.ReadingProgress.ID, schema.ReadingProgress.UserID, schema.ReadingProgress.ReadingDate,
		schema.ReadingProgress.BookName, schema.ReadingProgress.StartChapter, schema.ReadingProgress.EndChapter,
		schema.ReadingProgress.StartVerse, schema.ReadingProgress.EndVerse,
		schema.ReadingProgress.ChaptersCount, schema.ReadingProgress.CreatedAt,
		schema.ReadingProgress.Table, schema.ReadingProgress.UserID,
		schema.ReadingProgress.ReadingDate,
	)

	rows, err := repository.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "load_reading_ledger")
	}
	defer rows.Close()

	return collectEntries(rows)
}

func scanEntry(row pgx.Row) (*Entry, error) {
	entry := &Entry{}
	var readingDate time.Time

	err := row.Scan(
		&entry.ID, &entry.UserID, &readingDate,
		&entry.BookName, &entry.StartChapter, &entry.EndChapter,
		&entry.StartVerse, &entry.EndVerse,
		&entry.ChaptersCount, &entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.ReadingDate = NewDate(readingDate)
	return entry, nil
}

func collectEntries(rows pgx.Rows) ([]Entry, error) {
	entries := make([]Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_reading_entry")
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_reading_entries")
	}
	return entries, nil
}

// # Streak Repository

// PostgresStreakRepository implements [StreakRepository] using pgx.
type PostgresStreakRepository struct {
	pool *pgxpool.Pool
}

// NewStreakRepository creates the PostgreSQL implementation of [StreakRepository].
func NewStreakRepository(pool *pgxpool.Pool) *PostgresStreakRepository {
	return &PostgresStreakRepository{pool: pool}
}

func (repository *PostgresStreakRepository) Get(ctx context.Context, userID string) (StreakState, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		schema.ReadingStreak.CurrentStreak, schema.ReadingStreak.LongestStreak,
		schema.ReadingStreak.LastReadingDate,
		schema.ReadingStreak.Table, schema.ReadingStreak.UserID,
	)

	state := StreakState{}
	var lastReadingDate *time.Time

	err := repository.pool.QueryRow(ctx, query, userID).Scan(
		&state.CurrentStreak, &state.LongestStreak, &lastReadingDate,
	)
	if err != nil {
		// A user without a stored streak starts from the zero state.
		if errors.Is(err, pgx.ErrNoRows) {
			return StreakState{}, nil
		}
		return StreakState{}, dberr.Wrap(err, "get_streak_state")
	}

	if lastReadingDate != nil {
		date := NewDate(*lastReadingDate)
		state.LastReadingDate = &date
	}
	return state, nil
}

func (repository *PostgresStreakRepository) Upsert(ctx context.Context, userID string, state StreakState) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (%s) DO UPDATE
		SET %s = $2, %s = $3, %s = $4, %s = $5`,
		schema.ReadingStreak.Table,
		schema.ReadingStreak.UserID, schema.ReadingStreak.CurrentStreak,
		schema.ReadingStreak.LongestStreak, schema.ReadingStreak.LastReadingDate,
		schema.ReadingStreak.UpdatedAt,
		schema.ReadingStreak.UserID,
		schema.ReadingStreak.CurrentStreak, schema.ReadingStreak.LongestStreak,
		schema.ReadingStreak.LastReadingDate, schema.ReadingStreak.UpdatedAt,
	)

	var lastReadingDate *time.Time
	if state.LastReadingDate != nil {
		lastReadingDate = &state.LastReadingDate.Time
	}

	_, err := repository.pool.Exec(ctx, query,
		userID, state.CurrentStreak, state.LongestStreak, lastReadingDate, time.Now(),
	)
	if err != nil {
		return dberr.Wrap(err, "upsert_streak_state")
	}
	return nil
}
