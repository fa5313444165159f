package moodkit

import "time"

// Cell is one day of a month heatmap grid.
type Cell struct {
	Day    int    `json:"day"`
	Date   string `json:"date"`
	Mood   int    `json:"mood,omitempty"`
	Bucket Bucket `json:"bucket"`
}

// MonthGrid is a calendar-grid-ready view of the current month. Padding
// is the number of leading blank cells needed so day 1 sits under its
// weekday column in a Monday-first 7-column layout.
type MonthGrid struct {
	Year    int        `json:"year"`
	Month   time.Month `json:"month"`
	Padding int        `json:"padding"`
	Cells   []Cell     `json:"cells"`
}

// BuildMonthGrid builds the heatmap grid for today's month from the full
// entry collection. Days without an entry get the empty bucket.
func BuildMonthGrid(entries []Entry, today time.Time) MonthGrid {
	loc := today.Location()
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc)
	// Day 0 of the next month is the last day of this one.
	last := time.Date(today.Year(), today.Month()+1, 0, 0, 0, 0, 0, loc)

	byDate := EntryMap(entries)
	cells := make([]Cell, 0, last.Day())
	for day := 1; day <= last.Day(); day++ {
		date := FormatDate(time.Date(today.Year(), today.Month(), day, 12, 0, 0, 0, loc))
		cell := Cell{Day: day, Date: date, Bucket: BucketEmpty}
		if e, ok := byDate[date]; ok {
			cell.Mood = e.Mood
			cell.Bucket = BucketFor(float64(e.Mood))
		}
		cells = append(cells, cell)
	}

	return MonthGrid{
		Year:    today.Year(),
		Month:   today.Month(),
		Padding: SlotIndex(first.Weekday()),
		Cells:   cells,
	}
}
