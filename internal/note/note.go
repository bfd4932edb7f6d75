// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

/*
Package note implements free-form reading notes.

A note belongs to one user and may optionally be pinned to a book, a
chapter, or a specific ledger entry. Notes carry no analytics weight; they
are companion text to the reading progress ledger.
*/
package note

import "time"

// Note is one user-authored annotation.
type Note struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	// EntryID optionally links the note to a reading ledger entry.
	EntryID *string `json:"entry_id"`
	// BookName and Chapter optionally anchor the note to a passage.
	BookName *string `json:"book_name"`
	Chapter  *int    `json:"chapter"`

	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldContent  = "content"
	FieldBookName = "book_name"
	FieldChapter  = "chapter"

	// MaxContentLen bounds note size to keep list payloads reasonable.
	MaxContentLen = 4000
)
