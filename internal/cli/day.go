package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/akarpova/trackly/internal/tracking"
	"github.com/akarpova/trackly/internal/utils"
	"github.com/akarpova/trackly/internal/visibility"
)

type DayCmd struct {
	Date   string `short:"d" help:"Reference day (YYYY-MM-DD), defaults to today."`
	Search string `short:"s" help:"Case-insensitive title search."`
	Filter string `short:"f" help:"Status filter: all|today|completed|uncompleted." default:"all"`
}

var (
	sectionStyle = lipgloss.NewStyle().Bold(true)
	pinnedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (c *DayCmd) Run(ctx *Context) error {
	day, err := utils.ParseDayOrToday(c.Date)
	if err != nil {
		return err
	}
	status, ok := visibility.ParseStatus(c.Filter)
	if !ok {
		return fmt.Errorf("unknown filter %q (expected all|today|completed|uncompleted)", c.Filter)
	}

	sections, err := ctx.Service.Visible(visibility.Query{Day: day, Search: c.Search, Status: status})
	if err != nil {
		return err
	}
	records, err := ctx.Service.Records()
	if err != nil {
		return err
	}

	if len(sections) == 0 {
		fmt.Printf("Nothing to track on %s.\n", utils.FormatDay(day))
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", utils.FormatDay(day), day.Weekday())
	for _, section := range sections {
		title := sectionStyle.Render(section.Title)
		if section.Pinned {
			title = pinnedStyle.Render("📌 " + section.Title)
		}
		fmt.Fprintf(&b, "\n%s\n", title)
		for _, t := range section.Trackers {
			mark := "○"
			if tracking.CompletedOn(records, t.ID, day) {
				mark = doneStyle.Render("✓")
			}
			fmt.Fprintf(&b, "  %s %s %s %s\n", mark, t.Emoji, t.Title, mutedStyle.Render(shortID(t.ID)))
		}
	}
	fmt.Print(b.String())
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
