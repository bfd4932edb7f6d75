// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

package note

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/blessy228/daily-scripture-path/internal/platform/database/schema"
	"github.com/blessy228/daily-scripture-path/internal/platform/dberr"
	"github.com/blessy228/daily-scripture-path/pkg/pagination"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the PostgreSQL implementation of [Repository].
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (repository *PostgresRepository) Create(ctx context.Context, note *Note) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		schema.ReadingNote.Table,
		schema.ReadingNote.ID, schema.ReadingNote.UserID, schema.ReadingNote.EntryID,
		schema.ReadingNote.BookName, schema.ReadingNote.Chapter, schema.ReadingNote.Content,
		schema.ReadingNote.CreatedAt, schema.ReadingNote.UpdatedAt,
	)

	_, err := repository.pool.Exec(ctx, query,
		note.ID, note.UserID, note.EntryID,
		note.BookName, note.Chapter, note.Content,
		note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "create_note")
	}
	return nil
}

func (repository *PostgresRepository) Update(ctx context.Context, note *Note) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $6 AND %s = $7`,
		schema.ReadingNote.Table,
		schema.ReadingNote.EntryID, schema.ReadingNote.BookName, schema.ReadingNote.Chapter,
		schema.ReadingNote.Content, schema.ReadingNote.UpdatedAt,
		schema.ReadingNote.ID, schema.ReadingNote.UserID,
	)

	tag, err := repository.pool.Exec(ctx, query,
		note.EntryID, note.BookName, note.Chapter,
		note.Content, note.UpdatedAt,
		note.ID, note.UserID,
	)
	if err != nil {
		return dberr.Wrap(err, "update_note")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, userID, noteID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.ReadingNote.Table, schema.ReadingNote.ID, schema.ReadingNote.UserID)

	tag, err := repository.pool.Exec(ctx, query, noteID, userID)
	if err != nil {
		return dberr.Wrap(err, "delete_note")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) GetByID(ctx context.Context, userID, noteID string) (*Note, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s WHERE %s = $1 AND %s = $2`,
		schema.ReadingNote.ID, schema.ReadingNote.UserID, schema.ReadingNote.EntryID,
		schema.ReadingNote.BookName, schema.ReadingNote.Chapter, schema.ReadingNote.Content,
		schema.ReadingNote.CreatedAt, schema.ReadingNote.UpdatedAt,
		schema.ReadingNote.Table,
		schema.ReadingNote.ID, schema.ReadingNote.UserID,
	)

	note := &Note{}
	err := repository.pool.QueryRow(ctx, query, noteID, userID).Scan(
		&note.ID, &note.UserID, &note.EntryID,
		&note.BookName, &note.Chapter, &note.Content,
		&note.CreatedAt, &note.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_note")
	}
	return note, nil
}

func (repository *PostgresRepository) ListByUser(ctx context.Context, userID string, filter Filter, params pagination.Params) ([]Note, int, error) {
	// An empty filter array matches everything, so one query shape covers
	// both the filtered and unfiltered listings.
	countQuery := fmt.Sprintf(`
		SELECT COUNT(*) FROM %s
		WHERE %s = $1 AND (cardinality($2::text[]) = 0 OR %s = ANY($2))`,
		schema.ReadingNote.Table, schema.ReadingNote.UserID, schema.ReadingNote.BookName)

	books := filter.Books
	if books == nil {
		books = []string{}
	}

	total := 0
	if err := repository.pool.QueryRow(ctx, countQuery, userID, books).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_notes")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND (cardinality($2::text[]) = 0 OR %s = ANY($2))
		ORDER BY %s DESC
		LIMIT $3 OFFSET $4`,
		schema.ReadingNote.ID, schema.ReadingNote.UserID, schema.ReadingNote.EntryID,
		schema.ReadingNote.BookName, schema.ReadingNote.Chapter, schema.ReadingNote.Content,
		schema.ReadingNote.CreatedAt, schema.ReadingNote.UpdatedAt,
		schema.ReadingNote.Table,
		schema.ReadingNote.UserID, schema.ReadingNote.BookName,
		schema.ReadingNote.CreatedAt,
	)

	rows, err := repository.pool.Query(ctx, query, userID, books, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_notes")
	}
	defer rows.Close()

	notes := make([]Note, 0)
	for rows.Next() {
		note := Note{}
		if err := rows.Scan(
			&note.ID, &note.UserID, &note.EntryID,
			&note.BookName, &note.Chapter, &note.Content,
			&note.CreatedAt, &note.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_note")
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_notes")
	}

	return notes, total, nil
}
