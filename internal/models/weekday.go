package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// WeekDay is a calendar weekday numbered 1 (Monday) through 7 (Sunday).
// The numbering matches the persisted schedule format, not time.Weekday.
type WeekDay int

const (
	Monday WeekDay = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekDayNames = map[WeekDay]string{
	Monday:    "monday",
	Tuesday:   "tuesday",
	Wednesday: "wednesday",
	Thursday:  "thursday",
	Friday:    "friday",
	Saturday:  "saturday",
	Sunday:    "sunday",
}

// Valid reports whether d is one of the seven defined weekdays.
func (d WeekDay) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d WeekDay) String() string {
	if name, ok := weekDayNames[d]; ok {
		return name
	}
	return fmt.Sprintf("weekday(%d)", int(d))
}

// WeekDayFromTime converts Go's Sunday-first weekday numbering to the
// Monday-first domain numbering. Sunday folds to 7, everything else
// keeps its Monday=1..Saturday=6 position.
func WeekDayFromTime(wd time.Weekday) WeekDay {
	if wd == time.Sunday {
		return Sunday
	}
	return WeekDay(int(wd))
}

// Schedule is the set of weekdays a habit recurs on. An irregular event
// has an empty schedule.
type Schedule []WeekDay

// Contains reports whether the schedule includes the given weekday.
func (s Schedule) Contains(d WeekDay) bool {
	for _, wd := range s {
		if wd == d {
			return true
		}
	}
	return false
}

// String serializes the schedule as comma-joined ordinals ("1,3,5"),
// the form stored in the database. An empty schedule yields "".
func (s Schedule) String() string {
	if len(s) == 0 {
		return ""
	}
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}

// Normalize returns a sorted copy with duplicates removed.
func (s Schedule) Normalize() Schedule {
	seen := make(map[WeekDay]bool, len(s))
	var out Schedule
	for _, d := range s {
		if d.Valid() && !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseSchedule parses the comma-joined ordinal form back into a schedule.
// An empty string parses to an empty schedule. Ordinals outside 1-7 are
// rejected.
func ParseSchedule(raw string) (Schedule, error) {
	if raw == "" {
		return nil, nil
	}

	var schedule Schedule
	for _, part := range strings.Split(raw, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid weekday ordinal %q: %w", part, err)
		}
		d := WeekDay(n)
		if !d.Valid() {
			return nil, fmt.Errorf("weekday ordinal out of range: %d", n)
		}
		schedule = append(schedule, d)
	}
	return schedule, nil
}

// ParseWeekDay parses a weekday name or ordinal ("monday", "mon", "1").
func ParseWeekDay(s string) (WeekDay, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mon", "monday", "1":
		return Monday, nil
	case "tue", "tuesday", "2":
		return Tuesday, nil
	case "wed", "wednesday", "3":
		return Wednesday, nil
	case "thu", "thursday", "4":
		return Thursday, nil
	case "fri", "friday", "5":
		return Friday, nil
	case "sat", "saturday", "6":
		return Saturday, nil
	case "sun", "sunday", "7":
		return Sunday, nil
	}
	return 0, fmt.Errorf("unknown weekday: %q", s)
}
