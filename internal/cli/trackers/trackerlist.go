package trackers

import (
	"fmt"

	"github.com/akarpova/trackly/internal/cli"
)

type TrackerListCmd struct{}

func (c *TrackerListCmd) Run(ctx *cli.Context) error {
	categories, skipped, err := ctx.Service.Categories()
	if err != nil {
		return err
	}

	total := 0
	for _, category := range categories {
		if len(category.Trackers) == 0 {
			continue
		}
		fmt.Printf("%s:\n", category.Title)
		for _, t := range category.Trackers {
			kind := "event"
			if t.IsHabit {
				kind = t.Schedule.String()
			}
			pin := ""
			if t.IsPinned {
				pin = " [pinned]"
			}
			fmt.Printf("  %s %s (%s)%s  %s\n", t.Emoji, t.Title, kind, pin, t.ID)
			total++
		}
	}

	if total == 0 {
		fmt.Println("No trackers yet. Add one with 'trackly tracker add'.")
	}
	if skipped > 0 {
		fmt.Printf("Warning: %d row(s) could not be decoded and were skipped.\n", skipped)
	}
	return nil
}
