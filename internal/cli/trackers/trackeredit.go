package trackers

import (
	"fmt"

	"github.com/akarpova/trackly/internal/cli"
	"github.com/akarpova/trackly/internal/validation"
)

type TrackerEditCmd struct {
	Ref      string `arg:"" help:"Tracker id or title."`
	Title    string `help:"New title."`
	Category string `short:"c" help:"Move the tracker to this category."`
	Schedule string `short:"s" help:"New comma-separated weekday schedule."`
	Color    string `help:"New palette color code."`
	Emoji    string `help:"New emoji glyph."`
}

func (c *TrackerEditCmd) Run(ctx *cli.Context) error {
	tracker, category, err := cli.FindTracker(ctx, c.Ref)
	if err != nil {
		return err
	}

	if c.Title != "" {
		tracker.Title = c.Title
	}
	if c.Color != "" {
		tracker.Color = c.Color
	}
	if c.Emoji != "" {
		tracker.Emoji = c.Emoji
	}
	if c.Schedule != "" {
		schedule, err := cli.ParseScheduleFlag(c.Schedule)
		if err != nil {
			return err
		}
		tracker.Schedule = schedule
		tracker.IsHabit = len(schedule) > 0
	}
	if c.Category != "" {
		category = c.Category
	}

	if err := validation.ValidateTracker(tracker); err != nil {
		return fmt.Errorf("invalid tracker: %w", err)
	}

	if err := ctx.Service.UpdateTracker(tracker, category); err != nil {
		return err
	}
	fmt.Printf("Updated tracker: %s\n", tracker.Title)
	return nil
}
