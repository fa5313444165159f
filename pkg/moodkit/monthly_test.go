package moodkit

import (
	"testing"
	"time"
)

func TestBuildMonthGridPadding(t *testing.T) {
	tests := []struct {
		name        string
		today       time.Time
		wantPadding int
		wantDays    int
	}{
		// April 2026 has 30 days and starts on a Wednesday: offset 2.
		{"30-day month starting wednesday", time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC), 2, 30},
		// June 2026 starts on a Monday: no padding.
		{"month starting monday", time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC), 0, 30},
		// November 2026 starts on a Sunday: full 6-cell offset.
		{"month starting sunday", time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC), 6, 30},
		// August 2026 starts on a Saturday and has 31 days.
		{"31-day month starting saturday", time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC), 5, 31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := BuildMonthGrid(nil, tt.today)
			if grid.Padding != tt.wantPadding {
				t.Errorf("padding = %d, want %d", grid.Padding, tt.wantPadding)
			}
			if len(grid.Cells) != tt.wantDays {
				t.Errorf("cells = %d, want %d", len(grid.Cells), tt.wantDays)
			}
		})
	}
}

func TestBuildMonthGridBuckets(t *testing.T) {
	today := time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Date: "2026-04-01", Mood: 5},
		{Date: "2026-04-02", Mood: 3},
		{Date: "2026-04-03", Mood: 2},
		{Date: "2026-04-04", Mood: 1},
		{Date: "2026-03-31", Mood: 5}, // previous month, excluded
	}

	grid := BuildMonthGrid(entries, today)

	want := []Bucket{BucketPositive, BucketNeutralHigh, BucketNeutralLow, BucketNegative}
	for i, bucket := range want {
		if grid.Cells[i].Bucket != bucket {
			t.Errorf("day %d bucket = %s, want %s", i+1, grid.Cells[i].Bucket, bucket)
		}
	}
	for i := 4; i < len(grid.Cells); i++ {
		if grid.Cells[i].Bucket != BucketEmpty {
			t.Errorf("day %d bucket = %s, want empty", i+1, grid.Cells[i].Bucket)
		}
	}

	if grid.Cells[0].Date != "2026-04-01" {
		t.Errorf("first cell date = %s, want 2026-04-01", grid.Cells[0].Date)
	}
	if grid.Year != 2026 || grid.Month != time.April {
		t.Errorf("grid month = %d-%d, want 2026-April", grid.Year, grid.Month)
	}
}

func TestEntryMapLaterOverwrites(t *testing.T) {
	m := EntryMap([]Entry{
		{Date: "2026-04-01", Mood: 2},
		{Date: "2026-04-01T12:00:00Z", Mood: 5},
	})
	if len(m) != 1 {
		t.Fatalf("len = %d, want 1", len(m))
	}
	if m["2026-04-01"].Mood != 5 {
		t.Errorf("mood = %d, want 5 (later entry wins)", m["2026-04-01"].Mood)
	}
}
