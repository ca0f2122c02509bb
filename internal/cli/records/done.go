package records

import (
	"fmt"

	"github.com/akarpova/trackly/internal/cli"
	"github.com/akarpova/trackly/internal/models"
	"github.com/akarpova/trackly/internal/tracking"
	"github.com/akarpova/trackly/internal/utils"
)

type DoneCmd struct {
	Ref  string `arg:"" help:"Tracker id or title."`
	Date string `short:"d" help:"Day to mark (YYYY-MM-DD), defaults to today."`
}

func (c *DoneCmd) Run(ctx *cli.Context) error {
	tracker, _, err := cli.FindTracker(ctx, c.Ref)
	if err != nil {
		return err
	}
	day, err := utils.ParseDayOrToday(c.Date)
	if err != nil {
		return err
	}

	// Guard against duplicate completion facts: the store inserts
	// unconditionally.
	existing, err := ctx.Service.Records()
	if err != nil {
		return err
	}
	if tracking.CompletedOn(existing, tracker.ID, day) {
		fmt.Printf("%s is already marked done on %s\n", tracker.Title, utils.FormatDay(day))
		return nil
	}

	if err := ctx.Service.AddRecord(models.NewRecord(tracker.ID, day)); err != nil {
		return err
	}
	fmt.Printf("Marked %s done on %s\n", tracker.Title, utils.FormatDay(day))
	return nil
}
