// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

package reading_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/blessy228/daily-scripture-path/internal/canon"
	"github.com/blessy228/daily-scripture-path/internal/reading"
)

/*
TestTotalChaptersRead sums unioned coverage, never raw interval widths.
*/
func TestTotalChaptersRead(t *testing.T) {
	day := reading.DateOf(2026, time.May, 1)
	entries := []reading.Entry{
		entry(day, "Genesis", 1, 10),
		entry(day, "Genesis", 5, 15), // overlaps 5-10
		entry(day, "Ruth", 1, 4),
	}

	covered := reading.Coverage(entries)
	total := reading.TotalChaptersRead(covered)

	// Unioned: Genesis 1-15 plus Ruth 1-4.
	assert.Equal(t, 19, total)

	// Always bounded by the raw sum of chapters_count.
	raw := 0
	for _, e := range entries {
		raw += e.ChaptersCount
	}
	assert.LessOrEqual(t, total, raw)

	assert.Equal(t, 0, reading.TotalChaptersRead(reading.Coverage(nil)))
}

/*
TestProgressPercentage rounds against the full canon size.
*/
func TestProgressPercentage(t *testing.T) {
	assert.Equal(t, 0, reading.ProgressPercentage(0))
	assert.Equal(t, 100, reading.ProgressPercentage(canon.TotalChapters))

	// 1189/2 = 594.5 chapters would be 50%; 595 rounds to 50 as well.
	assert.Equal(t, 50, reading.ProgressPercentage(595))

	// A single chapter is far below half a percent.
	assert.Equal(t, 0, reading.ProgressPercentage(1))
	assert.Equal(t, 1, reading.ProgressPercentage(12))
}

/*
TestChaptersRemaining is the complement of chapters read.
*/
func TestChaptersRemaining(t *testing.T) {
	assert.Equal(t, canon.TotalChapters, reading.ChaptersRemaining(0))
	assert.Equal(t, 0, reading.ChaptersRemaining(canon.TotalChapters))
	assert.Equal(t, 1089, reading.ChaptersRemaining(100))
}

/*
TestTestamentSummary tracks chapter and book completion separately.
*/
func TestTestamentSummary(t *testing.T) {
	day := reading.DateOf(2026, time.May, 1)
	covered := reading.Coverage([]reading.Entry{
		entry(day, "Obadiah", 1, 1),  // OT, complete
		entry(day, "Genesis", 1, 25), // OT, half
		entry(day, "Jude", 1, 1),     // NT, complete
	})

	old := reading.TestamentSummary(covered, canon.Old)
	assert.Equal(t, canon.Old, old.Testament)
	assert.Equal(t, 26, old.ChaptersRead)
	assert.Equal(t, 929, old.ChaptersTotal)
	assert.Equal(t, 1, old.BooksCompleted)
	assert.Equal(t, 39, old.BooksTotal)
	assert.Equal(t, 3, old.Percentage) // 26/929 = 2.8 -> 3

	recent := reading.TestamentSummary(covered, canon.New)
	assert.Equal(t, 1, recent.ChaptersRead)
	assert.Equal(t, 1, recent.BooksCompleted)
	assert.Equal(t, 0, recent.Percentage)
}
