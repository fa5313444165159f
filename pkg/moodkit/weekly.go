package moodkit

import "time"

// SlotIndex converts a native Sunday-first weekday to the Monday-first
// index used by every weekly view (Mon=0 .. Sun=6).
func SlotIndex(w time.Weekday) int {
	if w == time.Sunday {
		return 6
	}
	return int(w) - 1
}

// WeekStart returns midnight of the most recent Monday on or before today.
func WeekStart(today time.Time) time.Time {
	back := SlotIndex(today.Weekday())
	d := today.AddDate(0, 0, -back)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, today.Location())
}

// AlignWeek places every entry falling in today's Monday-Sunday window
// into a 7-slot array indexed Mon=0..Sun=6. Entries outside the window
// are excluded; slots without an entry stay nil. The one-per-day
// invariant means at most one entry can land in each slot.
func AlignWeek(entries []Entry, today time.Time) [7]*Entry {
	var week [7]*Entry
	monday := WeekStart(today)
	end := monday.AddDate(0, 0, 7)

	for i := range entries {
		d, err := parseNoon(entries[i].Date, today.Location())
		if err != nil {
			continue
		}
		if d.Before(monday) || !d.Before(end) {
			continue
		}
		week[SlotIndex(d.Weekday())] = &entries[i]
	}
	return week
}

// WeeklyAverage returns the mean mood over populated slots and the number
// of days tracked. Average is 0 when no slot is populated.
func WeeklyAverage(week [7]*Entry) (float64, int) {
	sum, n := 0, 0
	for _, e := range week {
		if e != nil {
			sum += e.Mood
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}
	return float64(sum) / float64(n), n
}
