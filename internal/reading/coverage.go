// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

package reading

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/blessy228/daily-scripture-path/internal/canon"
)

// # Coverage Aggregation

// ChapterSet is the set of chapter numbers of one book touched by at least
// one ledger entry. Union semantics: overlapping and duplicate intervals are
// absorbed, never double-counted.
type ChapterSet map[int]struct{}

// Coverage folds a ledger into per-book chapter sets.
//
// The result is independent of entry order. Entries referencing books
// outside the canon are ignored; they cannot be created through the
// validated write path.
func Coverage(entries []Entry) map[string]ChapterSet {
	covered := make(map[string]ChapterSet)
	for i := range entries {
		entry := &entries[i]
		set, ok := covered[entry.BookName]
		if !ok {
			set = make(ChapterSet)
			covered[entry.BookName] = set
		}
		for chapter := entry.StartChapter; chapter <= entry.EndChapter; chapter++ {
			set[chapter] = struct{}{}
		}
	}
	return covered
}

// FormatRanges renders a chapter set as maximal consecutive runs,
// e.g. {1,2,3,5,7,8} -> "1-3, 5, 7-8". The empty set renders as "".
//
// Output depends only on set contents, not insertion order.
func FormatRanges(set ChapterSet) string {
	if len(set) == 0 {
		return ""
	}

	sorted := make([]int, 0, len(set))
	for chapter := range set {
		sorted = append(sorted, chapter)
	}
	sort.Ints(sorted)

	var ranges []string
	start, end := sorted[0], sorted[0]
	flush := func() {
		if start == end {
			ranges = append(ranges, strconv.Itoa(start))
		} else {
			ranges = append(ranges, strconv.Itoa(start)+"-"+strconv.Itoa(end))
		}
	}

	for _, chapter := range sorted[1:] {
		if chapter == end+1 {
			end = chapter
			continue
		}
		flush()
		start, end = chapter, chapter
	}
	flush()

	return strings.Join(ranges, ", ")
}

// # Per-Book Progress

// BookProgress summarizes one book's coverage for display.
type BookProgress struct {
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Testament     canon.Testament `json:"testament"`
	Chapters      int             `json:"chapters"`
	Read          int             `json:"read"`
	Percentage    int             `json:"percentage"`
	ChapterRanges string          `json:"chapter_ranges"`
	Completed     bool            `json:"completed"`
}

// BookProgressFor computes the coverage summary of a single book.
func BookProgressFor(book canon.Book, covered ChapterSet) BookProgress {
	read := len(covered)
	percentage := roundPercent(read, book.Chapters)
	return BookProgress{
		Name:          book.Name,
		Slug:          book.Slug,
		Testament:     book.Testament,
		Chapters:      book.Chapters,
		Read:          read,
		Percentage:    percentage,
		ChapterRanges: FormatRanges(covered),
		Completed:     percentage == 100,
	}
}

// InProgress reports whether the book is started but not finished.
func (p BookProgress) InProgress() bool {
	return p.Percentage > 0 && p.Percentage < 100
}

// roundPercent computes round(100 * part / whole), rounding halves away
// from zero.
func roundPercent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}

// # Ordered Views

// startedBooks walks the canon in canonical order and collects progress for
// every book with at least one covered chapter. Canonical order in, so any
// stable sort on top keeps canonical order as the tiebreak.
func startedBooks(covered map[string]ChapterSet) []BookProgress {
	var started []BookProgress
	for _, book := range canon.Books() {
		set := covered[book.Name]
		if len(set) == 0 {
			continue
		}
		started = append(started, BookProgressFor(book, set))
	}
	return started
}

// TopBooks returns up to limit started books ordered by percentage
// descending, ties broken by canonical biblical order.
func TopBooks(covered map[string]ChapterSet, limit int) []BookProgress {
	started := startedBooks(covered)
	sort.SliceStable(started, func(i, j int) bool {
		return started[i].Percentage > started[j].Percentage
	})
	if limit > 0 && len(started) > limit {
		started = started[:limit]
	}
	return started
}

// CompletedBooks returns all fully read books in canonical biblical order.
func CompletedBooks(covered map[string]ChapterSet) []BookProgress {
	var completed []BookProgress
	for _, progress := range startedBooks(covered) {
		if progress.Completed {
			completed = append(completed, progress)
		}
	}
	return completed
}

// InProgressBooks returns all started-but-unfinished books ordered by
// percentage descending.
func InProgressBooks(covered map[string]ChapterSet) []BookProgress {
	var inProgress []BookProgress
	for _, progress := range startedBooks(covered) {
		if progress.InProgress() {
			inProgress = append(inProgress, progress)
		}
	}
	sort.SliceStable(inProgress, func(i, j int) bool {
		return inProgress[i].Percentage > inProgress[j].Percentage
	})
	return inProgress
}
