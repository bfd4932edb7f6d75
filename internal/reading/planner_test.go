// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

package reading_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blessy228/daily-scripture-path/internal/reading"
)

/*
TestDaysInYear distinguishes leap years.
*/
func TestDaysInYear(t *testing.T) {
	assert.Equal(t, 365, reading.DaysInYear(2026))
	assert.Equal(t, 366, reading.DaysInYear(2028))
	assert.Equal(t, 365, reading.DaysInYear(2100)) // century, not a leap year
	assert.Equal(t, 366, reading.DaysInYear(2000))
}

/*
TestDaysRemaining is exclusive of today and hits zero on December 31.
*/
func TestDaysRemaining(t *testing.T) {
	assert.Equal(t, 364, reading.DaysRemaining(reading.DateOf(2026, time.January, 1)))
	assert.Equal(t, 1, reading.DaysRemaining(reading.DateOf(2026, time.December, 30)))
	assert.Equal(t, 0, reading.DaysRemaining(reading.DateOf(2026, time.December, 31)))

	// Leap year gets the extra day.
	assert.Equal(t, 365, reading.DaysRemaining(reading.DateOf(2028, time.January, 1)))
}

/*
TestDailyTarget checks ceiling division and the degenerate guards.
*/
func TestDailyTarget(t *testing.T) {
	tests := []struct {
		name      string
		remaining int
		days      int
		want      int
	}{
		{"exact_division", 100, 10, 10},
		{"ceiling", 101, 10, 11},
		{"one_day_left", 7, 1, 7},
		{"fewer_chapters_than_days", 3, 100, 1},
		{"year_end", 500, 0, 0},
		{"nothing_left", 0, 120, 0},
		{"overread", -3, 120, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reading.DailyTarget(tt.remaining, tt.days))
		})
	}
}

/*
TestPlanPreview materializes consecutive days with one shared target and raw
per-day chapter sums.
*/
func TestPlanPreview(t *testing.T) {
	today := reading.DateOf(2026, time.September, 1)
	entries := []reading.Entry{
		entry(today, "Genesis", 1, 3),
		entry(today, "Genesis", 1, 3), // duplicate: daily sums stay raw
		entry(today.AddDays(2), "Exodus", 1, 1),
		entry(today.AddDays(-1), "Mark", 1, 2), // outside the preview window
	}

	preview := reading.PlanPreview(5, today, entries)
	require.Len(t, preview, 5)

	// Days are consecutive starting today; only the first is flagged.
	for i, day := range preview {
		assert.True(t, day.Date.Equal(today.AddDays(i)))
		assert.Equal(t, i == 0, day.IsToday)
	}

	// Raw sum on today: 3 + 3 = 6 despite identical intervals.
	assert.True(t, preview[0].HasReading)
	assert.Equal(t, 6, preview[0].ChaptersRead)

	assert.False(t, preview[1].HasReading)
	assert.Equal(t, 0, preview[1].ChaptersRead)

	assert.True(t, preview[2].HasReading)
	assert.Equal(t, 1, preview[2].ChaptersRead)

	// The target is computed once from deduplicated lifetime coverage
	// (6 distinct chapters read) and repeated on every row.
	daysLeft := reading.DaysRemaining(today)
	want := reading.DailyTarget(reading.ChaptersRemaining(6), daysLeft)
	for _, day := range preview {
		assert.Equal(t, want, day.SuggestedTarget)
	}
}

/*
TestPlanPreview_Empty returns no rows for a zero-length window.
*/
func TestPlanPreview_Empty(t *testing.T) {
	today := reading.DateOf(2026, time.September, 1)
	assert.Empty(t, reading.PlanPreview(0, today, nil))
}
