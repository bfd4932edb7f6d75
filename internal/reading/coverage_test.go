// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

package reading_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blessy228/daily-scripture-path/internal/canon"
	"github.com/blessy228/daily-scripture-path/internal/reading"
)

/*
TestCoverage_Union verifies that overlapping and duplicate intervals are
absorbed into a single chapter set.
*/
func TestCoverage_Union(t *testing.T) {
	day := reading.DateOf(2026, time.April, 1)
	entries := []reading.Entry{
		entry(day, "Genesis", 1, 5),
		entry(day, "Genesis", 3, 8),
		entry(day, "Genesis", 3, 8), // exact duplicate
		entry(day, "Exodus", 2, 2),
	}

	covered := reading.Coverage(entries)

	require.Len(t, covered, 2)
	assert.Len(t, covered["Genesis"], 8)
	assert.Len(t, covered["Exodus"], 1)
}

/*
TestCoverage_OrderIndependence checks that the fold is a pure set union.
*/
func TestCoverage_OrderIndependence(t *testing.T) {
	day := reading.DateOf(2026, time.April, 1)
	forward := []reading.Entry{
		entry(day, "Mark", 1, 4),
		entry(day, "Mark", 10, 12),
		entry(day, "Mark", 4, 10),
	}
	backward := []reading.Entry{forward[2], forward[1], forward[0]}

	a := reading.Coverage(forward)
	b := reading.Coverage(backward)

	assert.Equal(t, a, b)
	assert.Len(t, a["Mark"], 12)
}

/*
TestFormatRanges renders chapter sets as maximal consecutive runs.
*/
func TestFormatRanges(t *testing.T) {
	tests := []struct {
		name     string
		chapters []int
		want     string
	}{
		{"empty", nil, ""},
		{"single", []int{4}, "4"},
		{"one_run", []int{1, 2, 3}, "1-3"},
		{"mixed", []int{1, 2, 3, 5, 7, 8}, "1-3, 5, 7-8"},
		{"all_isolated", []int{2, 4, 6}, "2, 4, 6"},
		{"unsorted_input", []int{8, 1, 7, 3, 2, 5}, "1-3, 5, 7-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := make(reading.ChapterSet, len(tt.chapters))
			for _, c := range tt.chapters {
				set[c] = struct{}{}
			}
			assert.Equal(t, tt.want, reading.FormatRanges(set))
		})
	}
}

/*
TestBookProgressFor checks percentage rounding and completion flags.
*/
func TestBookProgressFor(t *testing.T) {
	joel, ok := canon.ByName("Joel") // 3 chapters
	require.True(t, ok)

	oneOfThree := reading.ChapterSet{1: {}}
	progress := reading.BookProgressFor(joel, oneOfThree)

	// 1/3 rounds half away from zero: 33.33 -> 33.
	assert.Equal(t, 33, progress.Percentage)
	assert.False(t, progress.Completed)
	assert.True(t, progress.InProgress())

	full := reading.ChapterSet{1: {}, 2: {}, 3: {}}
	done := reading.BookProgressFor(joel, full)
	assert.Equal(t, 100, done.Percentage)
	assert.True(t, done.Completed)
	assert.False(t, done.InProgress())

	// 1/2 of a two-chapter book rounds up to 50, and 5/8 rounds 62.5 -> 63.
	haggai, _ := canon.ByName("Haggai") // 2 chapters
	assert.Equal(t, 50, reading.BookProgressFor(haggai, oneOfThree).Percentage)

	song, _ := canon.ByName("Song of Solomon") // 8 chapters
	fiveOfEight := reading.ChapterSet{1: {}, 2: {}, 3: {}, 4: {}, 5: {}}
	assert.Equal(t, 63, reading.BookProgressFor(song, fiveOfEight).Percentage)
}

/*
TestTopBooks verifies descending percentage order with canonical-order ties.
*/
func TestTopBooks(t *testing.T) {
	day := reading.DateOf(2026, time.April, 1)
	covered := reading.Coverage([]reading.Entry{
		entry(day, "Jude", 1, 1),     // 100%
		entry(day, "Psalms", 1, 15),  // 10%
		entry(day, "Matthew", 1, 14), // 50%
		entry(day, "Mark", 1, 8),     // 50%, later in canon than Matthew
	})

	top := reading.TopBooks(covered, 3)

	require.Len(t, top, 3)
	assert.Equal(t, "Jude", top[0].Name)
	assert.Equal(t, "Matthew", top[1].Name)
	assert.Equal(t, "Mark", top[2].Name)

	// Zero limit means no cap.
	assert.Len(t, reading.TopBooks(covered, 0), 4)
}

/*
TestCompletedAndInProgressBooks splits started books by completion.
*/
func TestCompletedAndInProgressBooks(t *testing.T) {
	day := reading.DateOf(2026, time.April, 1)
	covered := reading.Coverage([]reading.Entry{
		entry(day, "Obadiah", 1, 1), // complete
		entry(day, "Jonah", 1, 4),   // complete
		entry(day, "Micah", 1, 2),   // partial
	})

	completed := reading.CompletedBooks(covered)
	require.Len(t, completed, 2)
	assert.Equal(t, "Obadiah", completed[0].Name)
	assert.Equal(t, "Jonah", completed[1].Name)

	inProgress := reading.InProgressBooks(covered)
	require.Len(t, inProgress, 1)
	assert.Equal(t, "Micah", inProgress[0].Name)
}
