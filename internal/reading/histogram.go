// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

package reading

import "time"

// # Weekly Histogram

// HistogramBucket is one calendar day of the trailing week.
type HistogramBucket struct {
	// Label is the weekday short name ("Mon", "Tue", ...), or "Today" for
	// the final bucket.
	Label string `json:"label"`
	Date  Date   `json:"date"`
	// Chapters sums the raw chapters_count of entries logged exactly on
	// this calendar day.
	Chapters int `json:"chapters"`
}

// WeeklyHistogram buckets recent reading into exactly 7 calendar days
// ending today, in chronological order.
//
// Bucket membership is an exact calendar-day match on reading_date, not a
// timestamp window.
func WeeklyHistogram(now time.Time, entries []Entry) []HistogramBucket {
	today := NewDate(now)

	perDay := make(map[Date]int, len(entries))
	for i := range entries {
		perDay[entries[i].ReadingDate] += entries[i].ChaptersCount
	}

	buckets := make([]HistogramBucket, 0, 7)
	for offset := -6; offset <= 0; offset++ {
		date := today.AddDays(offset)
		label := date.Weekday().String()[:3]
		if offset == 0 {
			label = "Today"
		}
		buckets = append(buckets, HistogramBucket{
			Label:    label,
			Date:     date,
			Chapters: perDay[date],
		})
	}

	return buckets
}

// ThisWeekChapters sums chapters_count over entries whose reading date falls
// inside a rolling 7x24-hour window measured backwards from now.
//
// This window is defined independently of the 7 labeled calendar-day buckets
// of [WeeklyHistogram] and may disagree with their sum near day boundaries.
// The two computations are intentionally kept separate.
func ThisWeekChapters(now time.Time, entries []Entry) int {
	cutoff := now.Add(-7 * 24 * time.Hour)

	total := 0
	for i := range entries {
		if !entries[i].ReadingDate.Before(cutoff) {
			total += entries[i].ChaptersCount
		}
	}
	return total
}
