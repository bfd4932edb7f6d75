// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

package reading

import "github.com/blessy228/daily-scripture-path/internal/canon"

// # Lifetime Progress

// TotalChaptersRead counts distinct chapters read across the whole canon.
//
// It sums the unioned per-book coverage sets, never the raw chapters_count
// of individual entries: overlapping intervals for the same book must not
// be double-counted.
func TotalChaptersRead(covered map[string]ChapterSet) int {
	total := 0
	for _, set := range covered {
		total += len(set)
	}
	return total
}

// ProgressPercentage is the share of the full canon read, as a rounded
// integer percentage.
func ProgressPercentage(chaptersRead int) int {
	return roundPercent(chaptersRead, canon.TotalChapters)
}

// ChaptersRemaining is the number of canon chapters not yet read.
func ChaptersRemaining(chaptersRead int) int {
	return canon.TotalChapters - chaptersRead
}

// # Testament Aggregates

// TestamentProgress holds the per-testament coverage summary. Chapter-count
// completion and book-count completion are tracked separately: a testament
// can be half read by chapters while containing several finished books.
type TestamentProgress struct {
	Testament      canon.Testament `json:"testament"`
	ChaptersRead   int             `json:"chapters_read"`
	ChaptersTotal  int             `json:"chapters_total"`
	Percentage     int             `json:"percentage"`
	BooksCompleted int             `json:"books_completed"`
	BooksTotal     int             `json:"books_total"`
}

// TestamentSummary restricts the lifetime totals to one testament.
func TestamentSummary(covered map[string]ChapterSet, testament canon.Testament) TestamentProgress {
	summary := TestamentProgress{
		Testament:     testament,
		ChaptersTotal: canon.TestamentChapters(testament),
		BooksTotal:    canon.TestamentBooks(testament),
	}

	for _, book := range canon.Books() {
		if book.Testament != testament {
			continue
		}
		read := len(covered[book.Name])
		summary.ChaptersRead += read
		if read == book.Chapters {
			summary.BooksCompleted++
		}
	}

	summary.Percentage = roundPercent(summary.ChaptersRead, summary.ChaptersTotal)
	return summary
}
