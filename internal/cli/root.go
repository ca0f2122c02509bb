package cli

import (
	"fmt"
	"strings"

	"github.com/akarpova/trackly/internal/models"
	"github.com/akarpova/trackly/internal/storage"
	"github.com/akarpova/trackly/internal/tracking"
)

type Context struct {
	Store   storage.Provider
	Service *tracking.Service
}

// ParseScheduleFlag parses a comma-separated list of weekday names or
// ordinals ("mon,wed" or "1,3") into a normalized schedule.
func ParseScheduleFlag(s string) (models.Schedule, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var schedule models.Schedule
	for _, part := range strings.Split(s, ",") {
		day, err := models.ParseWeekDay(part)
		if err != nil {
			return nil, err
		}
		schedule = append(schedule, day)
	}
	return schedule.Normalize(), nil
}

// FindTracker locates a tracker by exact id or case-insensitive title
// and returns it with its home category. Title matches must be unique.
func FindTracker(ctx *Context, ref string) (models.Tracker, string, error) {
	categories, _, err := ctx.Service.Categories()
	if err != nil {
		return models.Tracker{}, "", err
	}

	type match struct {
		tracker  models.Tracker
		category string
	}
	var matches []match
	for _, c := range categories {
		for _, t := range c.Trackers {
			if t.ID == ref {
				return t, c.Title, nil
			}
			if strings.EqualFold(t.Title, ref) {
				matches = append(matches, match{t, c.Title})
			}
		}
	}

	switch len(matches) {
	case 0:
		return models.Tracker{}, "", fmt.Errorf("no tracker matches %q", ref)
	case 1:
		return matches[0].tracker, matches[0].category, nil
	default:
		return models.Tracker{}, "", fmt.Errorf("%q is ambiguous: %d trackers share that title, use the id", ref, len(matches))
	}
}
