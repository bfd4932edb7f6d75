// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

package reading

import "sort"

// # Streak Engine

// RecomputeStreak folds the ledger into a fresh [StreakState].
//
// This is the authoritative streak semantics: it is idempotent, independent
// of entry order, and must run after every add, edit, or delete. The fold
// works over the set of distinct reading dates:
//
//  1. No dates: current drops to zero; the longest streak ever achieved
//     is retained from the previous state.
//  2. The streak is alive only if the most recent date is today or
//     yesterday (grace for a day not yet logged).
//  3. While alive, consecutive dates walking backwards extend the streak;
//     the first gap larger than one day ends it.
//
// Only LongestStreak is carried over from the previous state; everything
// else is derived from the ledger snapshot.
func RecomputeStreak(entries []Entry, previous StreakState, today Date) StreakState {
	distinct := make(map[Date]struct{}, len(entries))
	for i := range entries {
		distinct[entries[i].ReadingDate] = struct{}{}
	}

	if len(distinct) == 0 {
		return StreakState{
			CurrentStreak:   0,
			LongestStreak:   previous.LongestStreak,
			LastReadingDate: nil,
		}
	}

	dates := make([]Date, 0, len(distinct))
	for date := range distinct {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j].Time) })

	mostRecent := dates[0]
	yesterday := today.AddDays(-1)

	current := 0
	if mostRecent.Equal(today) || mostRecent.Equal(yesterday) {
		current = 1
		for i := 0; i < len(dates)-1; i++ {
			if dates[i].DaysSince(dates[i+1]) != 1 {
				break
			}
			current++
		}
	}

	longest := previous.LongestStreak
	if current > longest {
		longest = current
	}

	return StreakState{
		CurrentStreak:   current,
		LongestStreak:   longest,
		LastReadingDate: &mostRecent,
	}
}

// AdvanceStreak applies the incremental transition for recording a single
// new reading date against a current state.
//
// It exists as a cheap add-only shortcut and must never be used after a
// delete or a date-changing edit; those require [RecomputeStreak]. Note the
// backfill case (gap of exactly -1 day) leaves both the counter and the
// most-recent marker untouched even where the full fold would extend the
// streak; the fold is authoritative whenever the two disagree.
func AdvanceStreak(state StreakState, readingDate Date) StreakState {
	next := state

	switch {
	case state.LastReadingDate == nil:
		next.CurrentStreak = 1
		next.LastReadingDate = &readingDate
	default:
		switch gap := readingDate.DaysSince(*state.LastReadingDate); gap {
		case 0:
			// Same day logged twice: no transition.
		case 1:
			next.CurrentStreak = state.CurrentStreak + 1
			next.LastReadingDate = &readingDate
		case -1:
			// Backfilling the day before the last recorded one: the
			// most-recent marker must not regress.
		default:
			next.CurrentStreak = 1
			next.LastReadingDate = &readingDate
		}
	}

	if next.CurrentStreak > next.LongestStreak {
		next.LongestStreak = next.CurrentStreak
	}

	return next
}
