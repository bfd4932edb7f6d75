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

func entriesOn(days ...reading.Date) []reading.Entry {
	out := make([]reading.Entry, 0, len(days))
	for _, day := range days {
		out = append(out, entry(day, "Genesis", 1, 1))
	}
	return out
}

/*
TestRecomputeStreak folds distinct reading dates into the current streak.
*/
func TestRecomputeStreak(t *testing.T) {
	today := reading.DateOf(2026, time.June, 15)
	day := func(offset int) reading.Date { return today.AddDays(offset) }

	tests := []struct {
		name    string
		offsets []int
		current int
	}{
		{"three_consecutive_ending_today", []int{-2, -1, 0}, 3},
		{"gap_before_today", []int{-5, 0}, 1},
		{"yesterday_grace", []int{-1}, 1},
		{"expired_two_days_ago", []int{-2}, 0},
		{"long_run_with_old_gap", []int{-7, -3, -2, -1, 0}, 4},
		{"duplicate_dates_count_once", []int{0, 0, -1, -1}, 2},
		{"only_today", []int{0}, 1},
		{"empty_ledger", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := make([]reading.Date, 0, len(tt.offsets))
			for _, offset := range tt.offsets {
				days = append(days, day(offset))
			}

			state := reading.RecomputeStreak(entriesOn(days...), reading.StreakState{}, today)
			assert.Equal(t, tt.current, state.CurrentStreak)
			assert.GreaterOrEqual(t, state.LongestStreak, state.CurrentStreak)
		})
	}
}

/*
TestRecomputeStreak_OrderAndIdempotency checks that the fold ignores entry
order and that re-running it is a no-op.
*/
func TestRecomputeStreak_OrderAndIdempotency(t *testing.T) {
	today := reading.DateOf(2026, time.June, 15)
	shuffled := entriesOn(today, today.AddDays(-2), today.AddDays(-1))

	first := reading.RecomputeStreak(shuffled, reading.StreakState{}, today)
	second := reading.RecomputeStreak(shuffled, first, today)

	assert.Equal(t, 3, first.CurrentStreak)
	assert.Equal(t, first, second)
}

/*
TestRecomputeStreak_LongestCarriesOver verifies the high-water mark survives
both broken streaks and a fully emptied ledger.
*/
func TestRecomputeStreak_LongestCarriesOver(t *testing.T) {
	today := reading.DateOf(2026, time.June, 15)
	previous := reading.StreakState{CurrentStreak: 2, LongestStreak: 9}

	// A dead streak keeps the record.
	state := reading.RecomputeStreak(entriesOn(today.AddDays(-4)), previous, today)
	assert.Equal(t, 0, state.CurrentStreak)
	assert.Equal(t, 9, state.LongestStreak)
	require.NotNil(t, state.LastReadingDate)
	assert.True(t, state.LastReadingDate.Equal(today.AddDays(-4)))

	// Deleting every entry keeps the record too.
	state = reading.RecomputeStreak(nil, previous, today)
	assert.Equal(t, 0, state.CurrentStreak)
	assert.Equal(t, 9, state.LongestStreak)
	assert.Nil(t, state.LastReadingDate)

	// A new longer run raises it.
	run := entriesOn(today, today.AddDays(-1), today.AddDays(-2))
	bigger := reading.RecomputeStreak(run, reading.StreakState{LongestStreak: 2}, today)
	assert.Equal(t, 3, bigger.LongestStreak)
}

/*
TestAdvanceStreak covers the incremental add-only transitions.
*/
func TestAdvanceStreak(t *testing.T) {
	base := reading.DateOf(2026, time.June, 10)

	fresh := reading.AdvanceStreak(reading.StreakState{}, base)
	assert.Equal(t, 1, fresh.CurrentStreak)
	assert.Equal(t, 1, fresh.LongestStreak)
	require.NotNil(t, fresh.LastReadingDate)

	// Next day extends.
	extended := reading.AdvanceStreak(fresh, base.AddDays(1))
	assert.Equal(t, 2, extended.CurrentStreak)
	assert.Equal(t, 2, extended.LongestStreak)
	assert.True(t, extended.LastReadingDate.Equal(base.AddDays(1)))

	// Same day is a no-op.
	same := reading.AdvanceStreak(extended, base.AddDays(1))
	assert.Equal(t, extended, same)

	// A jump resets to 1 but keeps the record.
	jumped := reading.AdvanceStreak(extended, base.AddDays(10))
	assert.Equal(t, 1, jumped.CurrentStreak)
	assert.Equal(t, 2, jumped.LongestStreak)
}

/*
TestAdvanceStreak_BackfillDivergence pins down the known disagreement
between the incremental shortcut and the authoritative fold: backfilling
the day before the last recorded one leaves the counter untouched, while
the fold extends the run.
*/
func TestAdvanceStreak_BackfillDivergence(t *testing.T) {
	today := reading.DateOf(2026, time.June, 15)

	state := reading.AdvanceStreak(reading.StreakState{}, today)
	backfilled := reading.AdvanceStreak(state, today.AddDays(-1))

	// Incremental: counter and marker both frozen.
	assert.Equal(t, 1, backfilled.CurrentStreak)
	assert.True(t, backfilled.LastReadingDate.Equal(today))

	// Authoritative fold over the same two dates sees a run of 2.
	folded := reading.RecomputeStreak(entriesOn(today, today.AddDays(-1)), reading.StreakState{}, today)
	assert.Equal(t, 2, folded.CurrentStreak)
}
