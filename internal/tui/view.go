package tui

import (
	"fmt"
	"strings"

	"github.com/akarpova/trackly/internal/tracking"
	"github.com/akarpova/trackly/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.confirm != nil {
		return docStyle.Render(m.confirm.View())
	}

	var b strings.Builder

	header := fmt.Sprintf("%s (%s)", utils.FormatDay(m.day), m.day.Weekday())
	b.WriteString(headerStyle.Render(header))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  filter: %s", m.status)))
	b.WriteString("\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	if len(m.items) == 0 {
		b.WriteString(mutedStyle.Render("\nNothing to track on this day.\n"))
	} else {
		b.WriteString(m.renderSections())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m))

	return docStyle.Render(b.String())
}

func (m Model) renderSections() string {
	var b strings.Builder

	row := 0
	for _, section := range m.sections {
		title := sectionStyle.Render(section.Title)
		if section.Pinned {
			title = pinnedStyle.Render("📌 " + section.Title)
		}
		b.WriteString("\n" + title + "\n")

		for _, t := range section.Trackers {
			cursor := "  "
			if row == m.cursor {
				cursor = cursorStyle.Render("> ")
			}

			mark := "○"
			if tracking.CompletedOn(m.records, t.ID, m.day) {
				mark = doneStyle.Render("✓")
			}

			fmt.Fprintf(&b, "%s%s %s %s\n", cursor, mark, t.Emoji, t.Title)
			row++
		}
	}

	return b.String()
}
