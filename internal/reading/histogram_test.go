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
TestWeeklyHistogram produces exactly 7 chronological calendar-day buckets
ending today.
*/
func TestWeeklyHistogram(t *testing.T) {
	// 2026-06-15 is a Monday.
	now := time.Date(2026, time.June, 15, 14, 30, 0, 0, time.UTC)
	today := reading.NewDate(now)

	entries := []reading.Entry{
		entry(today, "Genesis", 1, 2),
		entry(today, "Exodus", 5, 5),
		entry(today.AddDays(-3), "Mark", 1, 4),
		entry(today.AddDays(-7), "John", 1, 1), // outside the 7 buckets
	}

	buckets := reading.WeeklyHistogram(now, entries)
	require.Len(t, buckets, 7)

	// Chronological order ending today.
	assert.True(t, buckets[0].Date.Equal(today.AddDays(-6)))
	assert.True(t, buckets[6].Date.Equal(today))

	// Weekday short names with "Today" on the final bucket.
	assert.Equal(t, "Tue", buckets[0].Label)
	assert.Equal(t, "Sun", buckets[5].Label)
	assert.Equal(t, "Today", buckets[6].Label)

	// Raw per-day sums; the 8-day-old entry contributes nowhere.
	assert.Equal(t, 3, buckets[6].Chapters)
	assert.Equal(t, 4, buckets[3].Chapters)

	total := 0
	for _, bucket := range buckets {
		total += bucket.Chapters
	}
	assert.Equal(t, 7, total)
}

/*
TestThisWeekChapters uses a rolling 168-hour window, which is deliberately
a different boundary than the histogram's calendar buckets.
*/
func TestThisWeekChapters(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	today := reading.NewDate(now)

	entries := []reading.Entry{
		entry(today, "Genesis", 1, 2),           // in window
		entry(today.AddDays(-6), "Mark", 1, 3),  // in window
		entry(today.AddDays(-7), "John", 1, 5),  // midnight 7 days back: before the noon cutoff
		entry(today.AddDays(-20), "Acts", 1, 9), // far outside
	}

	assert.Equal(t, 5, reading.ThisWeekChapters(now, entries))

	// At exactly midnight the 7-day-old calendar day re-enters the rolling
	// window while the histogram's bucket set stays the same size.
	midnight := today.Time
	assert.Equal(t, 10, reading.ThisWeekChapters(midnight, entries))
}
