// Package visibility decides which trackers appear for a given calendar
// day. A habit appears on its scheduled weekdays; an irregular event
// appears on its creation day until completed and on the day it was
// completed (so it can still be un-completed there).
package visibility

import (
	"strings"
	"time"

	"github.com/akarpova/trackly/internal/models"
	"github.com/akarpova/trackly/internal/utils"
)

// Status narrows the day's trackers by completion state.
type Status int

const (
	StatusAll Status = iota
	StatusForToday
	StatusCompleted
	StatusUncompleted
)

func (s Status) String() string {
	switch s {
	case StatusForToday:
		return "today"
	case StatusCompleted:
		return "completed"
	case StatusUncompleted:
		return "uncompleted"
	default:
		return "all"
	}
}

// ParseStatus parses a status filter name from the CLI.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return StatusAll, true
	case "today", "for-today":
		return StatusForToday, true
	case "completed", "done":
		return StatusCompleted, true
	case "uncompleted", "pending":
		return StatusUncompleted, true
	}
	return StatusAll, false
}

// Query is one filtering request: the reference day plus the optional
// search text and status narrowing.
type Query struct {
	Day    time.Time
	Search string
	Status Status
}

// Section is one group in the filtered output. Pinned marks the
// synthetic section that collects pinned trackers from every category;
// for it the Title is display-only and never collides with a
// user-created category of the same name.
type Section struct {
	Pinned   bool
	Title    string
	Trackers []models.Tracker
}

// PinnedSectionTitle is the display name of the synthetic pinned section.
const PinnedSectionTitle = "Pinned"

// Filter computes the visible sections for a query. Pinned trackers are
// pulled out of their home categories into a leading synthetic section;
// categories left with no visible trackers are dropped entirely.
func Filter(categories []models.Category, records []models.Record, q Query) []Section {
	day := models.StartOfDay(q.Day)
	if q.Status == StatusForToday {
		day = utils.Today()
	}
	weekday := models.WeekDayFromTime(day.Weekday())
	search := strings.ToLower(strings.TrimSpace(q.Search))

	completed := completionIndex(records)

	var pinned []models.Tracker
	var sections []Section
	for _, category := range categories {
		var visible []models.Tracker
		for _, tracker := range category.Trackers {
			if !dateVisible(tracker, day, weekday, completed) {
				continue
			}
			if search != "" && !strings.Contains(strings.ToLower(tracker.Title), search) {
				continue
			}
			if !matchesStatus(tracker, day, q.Status, completed) {
				continue
			}
			if tracker.IsPinned {
				pinned = append(pinned, tracker)
				continue
			}
			visible = append(visible, tracker)
		}
		if len(visible) > 0 {
			sections = append(sections, Section{Title: category.Title, Trackers: visible})
		}
	}

	if len(pinned) > 0 {
		out := make([]Section, 0, len(sections)+1)
		out = append(out, Section{Pinned: true, Title: PinnedSectionTitle, Trackers: pinned})
		return append(out, sections...)
	}
	return sections
}

// dateVisible applies the schedule/irregular-event condition, before any
// search or status narrowing.
func dateVisible(t models.Tracker, day time.Time, weekday models.WeekDay, completed map[string][]time.Time) bool {
	if t.Schedule.Contains(weekday) {
		return true
	}
	if t.IsHabit {
		// A habit with an empty schedule should not exist; treat it as
		// never visible rather than always visible.
		return false
	}

	days := completed[t.ID]
	if len(days) == 0 {
		// A pending irregular event shows up on the current day only.
		return models.SameDay(day, utils.Today())
	}
	for _, d := range days {
		if models.SameDay(d, day) {
			return true
		}
	}
	return false
}

func matchesStatus(t models.Tracker, day time.Time, status Status, completed map[string][]time.Time) bool {
	switch status {
	case StatusCompleted:
		return completedOn(t.ID, day, completed)
	case StatusUncompleted:
		return !completedOn(t.ID, day, completed)
	default:
		return true
	}
}

func completedOn(trackerID string, day time.Time, completed map[string][]time.Time) bool {
	for _, d := range completed[trackerID] {
		if models.SameDay(d, day) {
			return true
		}
	}
	return false
}

func completionIndex(records []models.Record) map[string][]time.Time {
	index := make(map[string][]time.Time, len(records))
	for _, r := range records {
		index[r.TrackerID] = append(index[r.TrackerID], r.Day)
	}
	return index
}
