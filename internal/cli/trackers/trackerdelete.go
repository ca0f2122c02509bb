package trackers

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/akarpova/trackly/internal/cli"
	"github.com/akarpova/trackly/internal/models"
)

type TrackerDeleteCmd struct {
	Ref          string `arg:"" help:"Tracker id or title."`
	Yes          bool   `short:"y" help:"Skip the confirmation prompt."`
	PurgeRecords bool   `help:"Also delete the tracker's completion records."`
}

func (c *TrackerDeleteCmd) Run(ctx *cli.Context) error {
	tracker, category, err := cli.FindTracker(ctx, c.Ref)
	if err != nil {
		return err
	}

	if !c.Yes {
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete tracker %q from %q?", tracker.Title, category)).
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := ctx.Service.DeleteTracker(tracker.ID, category); err != nil {
		return err
	}

	// Completion records are not cascaded by the store; purge them
	// explicitly when asked to.
	if c.PurgeRecords {
		records, err := ctx.Service.Records()
		if err != nil {
			return err
		}
		for _, r := range records {
			if r.TrackerID == tracker.ID {
				if err := ctx.Service.DeleteRecord(models.NewRecord(r.TrackerID, r.Day)); err != nil {
					return err
				}
			}
		}
	}

	fmt.Printf("Deleted tracker: %s\n", tracker.Title)
	return nil
}
