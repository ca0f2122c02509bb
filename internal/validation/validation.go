package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/akarpova/trackly/internal/constants"
	"github.com/akarpova/trackly/internal/models"
)

// ValidateTracker checks a tracker before it is handed to the store.
// A habit must carry a non-empty schedule; an irregular event must not.
func ValidateTracker(t models.Tracker) error {
	title := strings.TrimSpace(t.Title)
	if title == "" {
		return fmt.Errorf("tracker title must not be empty")
	}
	if utf8.RuneCountInString(title) > constants.MaxTitleLen {
		return fmt.Errorf("tracker title exceeds %d characters", constants.MaxTitleLen)
	}

	if !constants.ValidColor(t.Color) {
		return fmt.Errorf("unknown color code: %q", t.Color)
	}
	if !constants.ValidEmoji(t.Emoji) {
		return fmt.Errorf("emoji %q is not in the fixed set", t.Emoji)
	}

	if t.IsHabit && len(t.Schedule) == 0 {
		return fmt.Errorf("a habit needs at least one scheduled weekday")
	}
	if !t.IsHabit && len(t.Schedule) > 0 {
		return fmt.Errorf("an irregular event must not carry a schedule")
	}

	for _, d := range t.Schedule {
		if !d.Valid() {
			return fmt.Errorf("schedule contains invalid weekday ordinal: %d", int(d))
		}
	}

	return nil
}

// ValidateCategoryName checks a category title before creation.
func ValidateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("category name must not be empty")
	}
	return nil
}
