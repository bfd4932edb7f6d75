// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

/*
Package canon provides the static reference table of biblical books.

It is the single source of truth for book names, chapter counts, and
testament grouping. The table is fixed at compile time, ordered in canonical
biblical order, and safe for concurrent reads.

All progress math in the reading domain is keyed against this table:
unknown book names and out-of-range chapter numbers are rejected before any
derived value is computed.
*/
package canon

import "github.com/blessy228/daily-scripture-path/pkg/slug"

// Testament identifies which half of the canon a book belongs to.
type Testament string

const (
	// Old covers Genesis through Malachi (39 books, 929 chapters).
	Old Testament = "old"
	// New covers Matthew through Revelation (27 books, 260 chapters).
	New Testament = "new"
)

// Book is one entry of the canon reference table.
type Book struct {
	// Name is the canonical English book name, the key used by reading entries.
	Name string `json:"name"`
	// Slug is the URL-safe identifier (e.g. "song-of-solomon").
	Slug string `json:"slug"`
	// Chapters is the number of chapters in the book. Chapter numbers are
	// 1-indexed and inclusive of this bound.
	Chapters int `json:"chapters"`
	// Testament is the testament grouping tag.
	Testament Testament `json:"testament"`
}

// books holds the full table in canonical biblical order. Order matters: it
// is the tiebreak for progress views and the display order for completed books.
var books = []Book{
	{Name: "Genesis", Chapters: 50, Testament: Old},
	{Name: "Exodus", Chapters: 40, Testament: Old},
	{Name: "Leviticus", Chapters: 27, Testament: Old},
	{Name: "Numbers", Chapters: 36, Testament: Old},
	{Name: "Deuteronomy", Chapters: 34, Testament: Old},
	{Name: "Joshua", Chapters: 24, Testament: Old},
	{Name: "Judges", Chapters: 21, Testament: Old},
	{Name: "Ruth", Chapters: 4, Testament: Old},
	{Name: "1 Samuel", Chapters: 31, Testament: Old},
	{Name: "2 Samuel", Chapters: 24, Testament: Old},
	{Name: "1 Kings", Chapters: 22, Testament: Old},
	{Name: "2 Kings", Chapters: 25, Testament: Old},
	{Name: "1 Chronicles", Chapters: 29, Testament: Old},
	{Name: "2 Chronicles", Chapters: 36, Testament: Old},
	{Name: "Ezra", Chapters: 10, Testament: Old},
	{Name: "Nehemiah", Chapters: 13, Testament: Old},
	{Name: "Esther", Chapters: 10, Testament: Old},
	{Name: "Job", Chapters: 42, Testament: Old},
	{Name: "Psalms", Chapters: 150, Testament: Old},
	{Name: "Proverbs", Chapters: 31, Testament: Old},
	{Name: "Ecclesiastes", Chapters: 12, Testament: Old},
	{Name: "Song of Solomon", Chapters: 8, Testament: Old},
	{Name: "Isaiah", Chapters: 66, Testament: Old},
	{Name: "Jeremiah", Chapters: 52, Testament: Old},
	{Name: "Lamentations", Chapters: 5, Testament: Old},
	{Name: "Ezekiel", Chapters: 48, Testament: Old},
	{Name: "Daniel", Chapters: 12, Testament: Old},
	{Name: "Hosea", Chapters: 14, Testament: Old},
	{Name: "Joel", Chapters: 3, Testament: Old},
	{Name: "Amos", Chapters: 9, Testament: Old},
	{Name: "Obadiah", Chapters: 1, Testament: Old},
	{Name: "Jonah", Chapters: 4, Testament: Old},
	{Name: "Micah", Chapters: 7, Testament: Old},
	{Name: "Nahum", Chapters: 3, Testament: Old},
	{Name: "Habakkuk", Chapters: 3, Testament: Old},
	{Name: "Zephaniah", Chapters: 3, Testament: Old},
	{Name: "Haggai", Chapters: 2, Testament: Old},
	{Name: "Zechariah", Chapters: 14, Testament: Old},
	{Name: "Malachi", Chapters: 4, Testament: Old},
	{Name: "Matthew", Chapters: 28, Testament: New},
	{Name: "Mark", Chapters: 16, Testament: New},
	{Name: "Luke", Chapters: 24, Testament: New},
	{Name: "John", Chapters: 21, Testament: New},
	{Name: "Acts", Chapters: 28, Testament: New},
	{Name: "Romans", Chapters: 16, Testament: New},
	{Name: "1 Corinthians", Chapters: 16, Testament: New},
	{Name: "2 Corinthians", Chapters: 13, Testament: New},
	{Name: "Galatians", Chapters: 6, Testament: New},
	{Name: "Ephesians", Chapters: 6, Testament: New},
	{Name: "Philippians", Chapters: 4, Testament: New},
	{Name: "Colossians", Chapters: 4, Testament: New},
	{Name: "1 Thessalonians", Chapters: 5, Testament: New},
	{Name: "2 Thessalonians", Chapters: 3, Testament: New},
	{Name: "1 Timothy", Chapters: 6, Testament: New},
	{Name: "2 Timothy", Chapters: 4, Testament: New},
	{Name: "Titus", Chapters: 3, Testament: New},
	{Name: "Philemon", Chapters: 1, Testament: New},
	{Name: "Hebrews", Chapters: 13, Testament: New},
	{Name: "James", Chapters: 5, Testament: New},
	{Name: "1 Peter", Chapters: 5, Testament: New},
	{Name: "2 Peter", Chapters: 3, Testament: New},
	{Name: "1 John", Chapters: 5, Testament: New},
	{Name: "2 John", Chapters: 1, Testament: New},
	{Name: "3 John", Chapters: 1, Testament: New},
	{Name: "Jude", Chapters: 1, Testament: New},
	{Name: "Revelation", Chapters: 22, Testament: New},
}

// TotalChapters is the sum of chapter counts over the entire canon (1189).
var TotalChapters int

var (
	byName map[string]int
	bySlug map[string]int
)

func init() {
	byName = make(map[string]int, len(books))
	bySlug = make(map[string]int, len(books))

	for i := range books {
		books[i].Slug = slug.From(books[i].Name)
		byName[books[i].Name] = i
		bySlug[books[i].Slug] = i
		TotalChapters += books[i].Chapters
	}
}

// Books returns the full table in canonical biblical order.
//
// The returned slice is a copy; callers may not mutate the reference table.
func Books() []Book {
	out := make([]Book, len(books))
	copy(out, books)
	return out
}

// Count returns the number of books in the canon.
func Count() int { return len(books) }

// ByName looks up a book by its canonical name.
func ByName(name string) (Book, bool) {
	i, ok := byName[name]
	if !ok {
		return Book{}, false
	}
	return books[i], true
}

// BySlug looks up a book by its URL slug.
func BySlug(s string) (Book, bool) {
	i, ok := bySlug[s]
	if !ok {
		return Book{}, false
	}
	return books[i], true
}

// Position returns the canonical order index of a book name, or -1 if the
// name is not part of the canon. Used as the stable tiebreak in progress views.
func Position(name string) int {
	i, ok := byName[name]
	if !ok {
		return -1
	}
	return i
}

// TestamentChapters returns the total chapter count for one testament.
func TestamentChapters(t Testament) int {
	total := 0
	for i := range books {
		if books[i].Testament == t {
			total += books[i].Chapters
		}
	}
	return total
}

// TestamentBooks returns the number of books in one testament.
func TestamentBooks(t Testament) int {
	count := 0
	for i := range books {
		if books[i].Testament == t {
			count++
		}
	}
	return count
}
