package trackers

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/akarpova/trackly/internal/cli"
	"github.com/akarpova/trackly/internal/models"
	"github.com/akarpova/trackly/internal/validation"
)

type TrackerAddCmd struct {
	Title    string `arg:"" help:"Tracker title."`
	Category string `short:"c" help:"Category the tracker belongs to." required:""`
	Schedule string `short:"s" help:"Comma-separated weekdays for a habit (e.g. mon,wed,fri). Omit for an irregular event."`
	Color    string `help:"Palette color code." default:"green"`
	Emoji    string `help:"Emoji glyph from the fixed set." default:"🙂"`
	Pin      bool   `help:"Pin the tracker to the top section."`
}

func (c *TrackerAddCmd) Run(ctx *cli.Context) error {
	schedule, err := cli.ParseScheduleFlag(c.Schedule)
	if err != nil {
		return err
	}

	tracker := models.Tracker{
		ID:       uuid.New().String(),
		Title:    c.Title,
		Color:    c.Color,
		Emoji:    c.Emoji,
		Schedule: schedule,
		IsHabit:  len(schedule) > 0,
		IsPinned: c.Pin,
	}

	if err := validation.ValidateTracker(tracker); err != nil {
		return fmt.Errorf("invalid tracker: %w", err)
	}

	if err := ctx.Service.AddTracker(tracker, c.Category); err != nil {
		return err
	}

	kind := "irregular event"
	if tracker.IsHabit {
		kind = "habit"
	}
	fmt.Printf("Added %s: %s (ID: %s)\n", kind, c.Title, tracker.ID)
	return nil
}
