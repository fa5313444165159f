// Package moodkit implements the mood-entry calendar logic shared by the
// MindCare server and client: Monday-first week alignment, month heatmap
// grids, color buckets, and the pending-draft submission flow.
package moodkit

import (
	"strings"
	"time"
)

// DateLayout is the civil-date wire format for all mood entries.
const DateLayout = "2006-01-02"

// Entry is a single mood record. Date is a local civil date; the backend
// keeps at most one entry per user per date.
type Entry struct {
	Date       string   `json:"date"`
	Mood       int      `json:"mood"`
	Activities []string `json:"activities"`
}

// FormatDate renders t's civil date in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// NormalizeDate strips any time-of-day suffix from a date string,
// so "2026-08-29T00:00:00Z" and "2026-08-29" key identically.
func NormalizeDate(date string) string {
	if i := strings.IndexByte(date, 'T'); i >= 0 {
		return date[:i]
	}
	return date
}

// parseNoon parses a civil date at local noon. Noon keeps boundary dates
// from drifting into the adjacent day when offsets shift.
func parseNoon(date string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, NormalizeDate(date), loc)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, loc), nil
}

// EntryMap keys entries by normalized date. Later entries overwrite
// earlier ones, consistent with the one-per-day invariant.
func EntryMap(entries []Entry) map[string]Entry {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[NormalizeDate(e.Date)] = e
	}
	return m
}
