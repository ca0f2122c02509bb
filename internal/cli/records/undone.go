package records

import (
	"fmt"

	"github.com/akarpova/trackly/internal/cli"
	"github.com/akarpova/trackly/internal/models"
	"github.com/akarpova/trackly/internal/utils"
)

type UndoneCmd struct {
	Ref  string `arg:"" help:"Tracker id or title."`
	Date string `short:"d" help:"Day to unmark (YYYY-MM-DD), defaults to today."`
}

func (c *UndoneCmd) Run(ctx *cli.Context) error {
	tracker, _, err := cli.FindTracker(ctx, c.Ref)
	if err != nil {
		return err
	}
	day, err := utils.ParseDayOrToday(c.Date)
	if err != nil {
		return err
	}

	if err := ctx.Service.DeleteRecord(models.NewRecord(tracker.ID, day)); err != nil {
		return err
	}
	fmt.Printf("Unmarked %s on %s\n", tracker.Title, utils.FormatDay(day))
	return nil
}
