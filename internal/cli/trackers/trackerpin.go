package trackers

import (
	"fmt"

	"github.com/akarpova/trackly/internal/cli"
)

type TrackerPinCmd struct {
	Ref string `arg:"" help:"Tracker id or title."`
}

func (c *TrackerPinCmd) Run(ctx *cli.Context) error {
	return togglePin(ctx, c.Ref, true)
}

type TrackerUnpinCmd struct {
	Ref string `arg:"" help:"Tracker id or title."`
}

func (c *TrackerUnpinCmd) Run(ctx *cli.Context) error {
	return togglePin(ctx, c.Ref, false)
}

func togglePin(ctx *cli.Context, ref string, pinned bool) error {
	tracker, _, err := cli.FindTracker(ctx, ref)
	if err != nil {
		return err
	}
	if err := ctx.Service.TogglePin(tracker.ID, pinned); err != nil {
		return err
	}
	verb := "Pinned"
	if !pinned {
		verb = "Unpinned"
	}
	fmt.Printf("%s tracker: %s\n", verb, tracker.Title)
	return nil
}
