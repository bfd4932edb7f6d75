// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

package reading

import "time"

// # Pacing Planner

// DaysInYear returns 365 or 366 for leap years.
func DaysInYear(year int) int {
	if time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay() == 366 {
		return 366
	}
	return 365
}

// DaysRemaining counts the days left until year-end, exclusive of today.
// On December 31 it returns 0.
func DaysRemaining(today Date) int {
	return DaysInYear(today.Year()) - today.YearDay()
}

// DailyTarget is the chapters-per-day pace needed to finish the remaining
// chapters by year-end: ceil(chaptersRemaining / daysRemaining).
//
// On the last day of the year daysRemaining is 0 and the target collapses
// to 0 rather than dividing by zero.
func DailyTarget(chaptersRemaining, daysRemaining int) int {
	if daysRemaining <= 0 || chaptersRemaining <= 0 {
		return 0
	}
	return (chaptersRemaining + daysRemaining - 1) / daysRemaining
}

// PlanDay is one row of the materialized plan preview.
type PlanDay struct {
	Date       Date `json:"date"`
	IsToday    bool `json:"is_today"`
	HasReading bool `json:"has_reading"`

	// ChaptersRead sums the raw chapters_count of the day's entries. Daily
	// display granularity intentionally skips the lifetime coverage
	// dedup: the same chapter logged twice in a day counts twice here.
	ChaptersRead int `json:"chapters_read"`

	// SuggestedTarget repeats the single plan-wide daily target; it is not
	// recomputed per day.
	SuggestedTarget int `json:"suggested_target"`
}

// PlanPreview materializes a plan of n consecutive days starting today.
//
// The daily target is derived once from the ledger's deduplicated lifetime
// coverage and repeated on every row.
func PlanPreview(n int, today Date, entries []Entry) []PlanDay {
	chaptersRead := TotalChaptersRead(Coverage(entries))
	target := DailyTarget(ChaptersRemaining(chaptersRead), DaysRemaining(today))

	perDay := make(map[Date]int, len(entries))
	for i := range entries {
		perDay[entries[i].ReadingDate] += entries[i].ChaptersCount
	}

	days := make([]PlanDay, 0, n)
	for i := 0; i < n; i++ {
		date := today.AddDays(i)
		read, hasReading := perDay[date]
		days = append(days, PlanDay{
			Date:            date,
			IsToday:         i == 0,
			HasReading:      hasReading,
			ChaptersRead:    read,
			SuggestedTarget: target,
		})
	}

	return days
}
