package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/akarpova/trackly/internal/cli"
	"github.com/akarpova/trackly/internal/cli/categories"
	"github.com/akarpova/trackly/internal/cli/records"
	"github.com/akarpova/trackly/internal/cli/system"
	"github.com/akarpova/trackly/internal/cli/trackers"
	"github.com/akarpova/trackly/internal/constants"
	"github.com/akarpova/trackly/internal/errors"
	"github.com/akarpova/trackly/internal/logger"
	"github.com/akarpova/trackly/internal/storage/sqlite"
	"github.com/akarpova/trackly/internal/tracking"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." type:"string" default:"~/.config/trackly/trackly.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     system.InitCmd             `cmd:"" help:"Initialize trackly storage."`
	Tui      system.TuiCmd              `cmd:"" help:"Launch the interactive day view." default:"1"`
	Day      cli.DayCmd                 `cmd:"" help:"Show the trackers for a day."`
	Stats    cli.StatsCmd               `cmd:"" help:"Show completion statistics."`
	Done     records.DoneCmd            `cmd:"" help:"Mark a tracker complete for a day."`
	Undone   records.UndoneCmd          `cmd:"" help:"Unmark a tracker for a day."`
	Category struct {
		Add  categories.CategoryAddCmd  `cmd:"" help:"Create a category."`
		List categories.CategoryListCmd `cmd:"" help:"List categories."`
	} `cmd:"" help:"Manage categories."`
	Tracker struct {
		Add    trackers.TrackerAddCmd    `cmd:"" help:"Add a habit or irregular event."`
		Edit   trackers.TrackerEditCmd   `cmd:"" help:"Edit an existing tracker."`
		Delete trackers.TrackerDeleteCmd `cmd:"" help:"Delete a tracker."`
		List   trackers.TrackerListCmd   `cmd:"" help:"List all trackers."`
		Pin    trackers.TrackerPinCmd    `cmd:"" help:"Pin a tracker to the top section."`
		Unpin  trackers.TrackerUnpinCmd  `cmd:"" help:"Unpin a tracker."`
	} `cmd:"" help:"Manage trackers."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit and irregular-event tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.Config)
	store := sqlite.NewStore(configPath)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(configPath)}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
	}

	appCtx := &cli.Context{
		Store:   store,
		Service: tracking.NewService(store),
	}

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		errors.Fatal(store.Load())
	}

	errors.Fatal(ctx.Run(appCtx))
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
