package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/akarpova/trackly/internal/utils"
	"github.com/akarpova/trackly/internal/visibility"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}

	if m.confirm != nil {
		form, cmd := m.confirm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.confirm = f
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.PrevDay):
		// The for-today filter pins the view to the current day; moving
		// m.day under it would record completions on the wrong date.
		if m.status != visibility.StatusForToday {
			m.day = m.day.AddDate(0, 0, -1)
			m.refresh()
		}

	case key.Matches(msg, m.keys.NextDay):
		if m.status != visibility.StatusForToday {
			m.day = m.day.AddDate(0, 0, 1)
			m.refresh()
		}

	case key.Matches(msg, m.keys.Today):
		m.day = utils.Today()
		m.refresh()

	case key.Matches(msg, m.keys.Toggle):
		m.toggleSelected()

	case key.Matches(msg, m.keys.Pin):
		if row := m.selected(); row != nil {
			m.err = m.service.TogglePin(row.tracker.ID, !row.tracker.IsPinned)
			m.refresh()
		}

	case key.Matches(msg, m.keys.Delete):
		if row := m.selected(); row != nil {
			m.deleteTarget = row
			m.confirmDelete = false
			m.confirm = huh.NewForm(huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Delete tracker %q?", row.tracker.Title)).
					Value(&m.confirmDelete),
			))
			return m, m.confirm.Init()
		}

	case key.Matches(msg, m.keys.Filter):
		m.cycleStatus()

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		m.refresh()
		return m, nil
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refresh()
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form, cmd := m.confirm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.confirm = f
	}

	if m.confirm.State == huh.StateCompleted {
		if m.confirmDelete && m.deleteTarget != nil {
			m.err = m.service.DeleteTracker(m.deleteTarget.tracker.ID, m.deleteTarget.homeCategory)
		}
		m.confirm = nil
		m.deleteTarget = nil
		m.refresh()
		return m, nil
	}
	if m.confirm.State == huh.StateAborted {
		m.confirm = nil
		m.deleteTarget = nil
		return m, nil
	}

	return m, cmd
}
