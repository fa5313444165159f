package moodkit

import (
	"context"
	"errors"
	"sort"
	"time"
)

// AITagPrefix marks activity tags synthesized from emotion detection.
const AITagPrefix = "AI: "

// ErrMoodRequired is returned by Submit when no mood has been selected.
// Validation happens before any network call is attempted.
var ErrMoodRequired = errors.New("mood is required")

// Submitter sends a pending mood to the remote store and returns the
// canonical stored entry. The store coalesces a same-day resubmission
// into an update; callers must apply the returned entry, not their own
// guess of it.
type Submitter interface {
	SubmitMood(ctx context.Context, mood int, activities []string) (Entry, error)
}

// Tracker holds the canonical in-memory mood collection plus the pending
// draft being edited. The weekly and monthly views are derived from the
// collection on demand; they are views, not separate stores.
type Tracker struct {
	entries map[string]Entry

	draftMood       int
	draftActivities []string
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{entries: make(map[string]Entry)}
}

// SetEntries replaces the canonical collection, typically with a fetched
// history. Later entries for the same date supersede earlier ones.
func (t *Tracker) SetEntries(entries []Entry) {
	t.entries = EntryMap(entries)
}

// Apply merges one canonical entry into the collection, replacing any
// existing entry with the same date.
func (t *Tracker) Apply(e Entry) {
	t.entries[NormalizeDate(e.Date)] = e
}

// Entries returns the collection ordered by date ascending.
func (t *Tracker) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return NormalizeDate(out[i].Date) < NormalizeDate(out[j].Date)
	})
	return out
}

// Len returns the number of distinct dates tracked.
func (t *Tracker) Len() int { return len(t.entries) }

// SelectMood sets the pending mood value.
func (t *Tracker) SelectMood(mood int) {
	t.draftMood = mood
}

// ToggleActivity adds the tag to the pending set, or removes it if
// already present.
func (t *Tracker) ToggleActivity(activity string) {
	for i, a := range t.draftActivities {
		if a == activity {
			t.draftActivities = append(t.draftActivities[:i], t.draftActivities[i+1:]...)
			return
		}
	}
	t.draftActivities = append(t.draftActivities, activity)
}

// ApplySuggestion folds an externally-inferred (mood, emotion) pair into
// the pending draft: the mood value is selected and an "AI: <emotion>"
// tag is added if not already present. The suggestion stays advisory;
// nothing is submitted until the user does so.
func (t *Tracker) ApplySuggestion(mood int, emotion string) {
	t.draftMood = mood
	tag := AITagPrefix + emotion
	for _, a := range t.draftActivities {
		if a == tag {
			return
		}
	}
	t.draftActivities = append(t.draftActivities, tag)
}

// PendingMood returns the draft mood, 0 when none is selected.
func (t *Tracker) PendingMood() int { return t.draftMood }

// PendingActivities returns a copy of the draft activity set.
func (t *Tracker) PendingActivities() []string {
	out := make([]string, len(t.draftActivities))
	copy(out, t.draftActivities)
	return out
}

// Submit sends the pending draft through s. On success the server's
// canonical entry replaces any same-date entry in the collection and the
// draft is reset. On failure nothing changes; the caller may re-invoke.
func (t *Tracker) Submit(ctx context.Context, s Submitter) (Entry, error) {
	if t.draftMood < 1 || t.draftMood > 5 {
		return Entry{}, ErrMoodRequired
	}

	entry, err := s.SubmitMood(ctx, t.draftMood, t.PendingActivities())
	if err != nil {
		return Entry{}, err
	}

	t.Apply(entry)
	t.draftMood = 0
	t.draftActivities = nil
	return entry, nil
}

// Weekly derives the Monday-first 7-slot view for today's week.
func (t *Tracker) Weekly(today time.Time) [7]*Entry {
	return AlignWeek(t.Entries(), today)
}

// Monthly derives the heatmap grid for today's month.
func (t *Tracker) Monthly(today time.Time) MonthGrid {
	return BuildMonthGrid(t.Entries(), today)
}
