// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

package reading_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blessy228/daily-scripture-path/internal/reading"
)

// entry builds a minimal ledger row for analytics tests. ChaptersCount is
// derived the same way the service derives it.
func entry(date reading.Date, book string, start, end int) reading.Entry {
	return reading.Entry{
		ReadingDate:   date,
		BookName:      book,
		StartChapter:  start,
		EndChapter:    end,
		ChaptersCount: end - start + 1,
	}
}

/*
TestDate_NewDate verifies normalization to the calendar day of the
source location.
*/
func TestDate_NewDate(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// 2026-03-01 02:00 in Tokyo is still 2026-02-28 in UTC, but the
	// calendar day is read in the clock's own location.
	clock := time.Date(2026, time.March, 1, 2, 0, 0, 0, tokyo)
	assert.Equal(t, "2026-03-01", reading.NewDate(clock).String())

	// Already-normalized input is a fixed point.
	date := reading.DateOf(2026, time.July, 4)
	assert.Equal(t, date, reading.NewDate(date.Time))
}

/*
TestDate_Arithmetic covers day stepping and whole-day differences across
month and year boundaries.
*/
func TestDate_Arithmetic(t *testing.T) {
	date := reading.DateOf(2026, time.January, 31)

	assert.Equal(t, "2026-02-01", date.AddDays(1).String())
	assert.Equal(t, "2025-12-31", reading.DateOf(2026, time.January, 1).AddDays(-1).String())

	a := reading.DateOf(2026, time.March, 3)
	b := reading.DateOf(2026, time.February, 28)
	assert.Equal(t, 3, a.DaysSince(b))
	assert.Equal(t, -3, b.DaysSince(a))
	assert.Equal(t, 0, a.DaysSince(a))
}

/*
TestDate_JSON checks the YYYY-MM-DD wire format in both directions.
*/
func TestDate_JSON(t *testing.T) {
	date := reading.DateOf(2026, time.August, 30)

	raw, err := json.Marshal(date)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-30"`, string(raw))

	var decoded reading.Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-08-30"`), &decoded))
	assert.True(t, decoded.Equal(date))

	assert.Error(t, json.Unmarshal([]byte(`"30/08/2026"`), &decoded))
	assert.Error(t, json.Unmarshal([]byte(`"2026-13-01"`), &decoded))
}
