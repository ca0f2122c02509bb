package models

import "time"

// Tracker is a single habit or irregular event. A habit carries a weekly
// schedule; an irregular event has an empty schedule and is governed by
// its completion history instead.
type Tracker struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Color    string   `json:"color"` // palette code, see constants.Palette
	Emoji    string   `json:"emoji"`
	Schedule Schedule `json:"schedule,omitempty"`
	IsHabit  bool     `json:"is_habit"`
	IsPinned bool     `json:"is_pinned"`
}

// Category is a named, ordered group of trackers. The title is the
// primary key: there is no separate category id.
type Category struct {
	Title    string    `json:"title"`
	Trackers []Tracker `json:"trackers"`
}

// Record is a completion fact: the tracker was marked done on Day.
// Day is always normalized to start-of-day in the local calendar.
type Record struct {
	TrackerID string    `json:"tracker_id"`
	Day       time.Time `json:"day"`
}

// NewRecord builds a record with the date normalized to start-of-day.
func NewRecord(trackerID string, day time.Time) Record {
	return Record{
		TrackerID: trackerID,
		Day:       StartOfDay(day),
	}
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}
