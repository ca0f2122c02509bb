package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/akarpova/trackly/internal/logger"
	"github.com/akarpova/trackly/internal/models"
	"github.com/akarpova/trackly/internal/tracking"
	"github.com/akarpova/trackly/internal/utils"
	"github.com/akarpova/trackly/internal/visibility"
)

// item is one selectable row: a tracker plus the section it is shown in
// and the category it really belongs to (which differs for pinned rows).
type item struct {
	tracker      models.Tracker
	sectionTitle string
	pinnedRow    bool
	homeCategory string
}

type Model struct {
	service *tracking.Service

	day      time.Time
	status   visibility.Status
	sections []visibility.Section
	records  []models.Record
	items    []item
	cursor   int

	search    textinput.Model
	searching bool

	confirm       *huh.Form
	confirmDelete bool
	deleteTarget  *item

	keys     KeyMap
	help     help.Model
	err      error
	width    int
	height   int
	quitting bool
}

func NewModel(service *tracking.Service) Model {
	search := textinput.New()
	search.Placeholder = "search trackers"
	search.CharLimit = 64

	service.Subscribe(func() {
		logger.Debug("Tracker data changed")
	})

	m := Model{
		service: service,
		day:     utils.Today(),
		status:  visibility.StatusAll,
		search:  search,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh refetches the snapshot and rebuilds the flattened row list,
// clamping the cursor to the new bounds.
func (m *Model) refresh() {
	sections, err := m.service.Visible(visibility.Query{
		Day:    m.day,
		Search: m.search.Value(),
		Status: m.status,
	})
	if err != nil {
		m.err = err
		return
	}
	records, err := m.service.Records()
	if err != nil {
		m.err = err
		return
	}

	m.err = nil
	m.sections = sections
	m.records = records

	m.items = m.items[:0]
	for _, section := range sections {
		for _, t := range section.Trackers {
			row := item{
				tracker:      t,
				sectionTitle: section.Title,
				pinnedRow:    section.Pinned,
				homeCategory: section.Title,
			}
			if section.Pinned {
				// Restore the true category for mutations on pinned rows.
				if home, err := m.service.CategoryByTracker(t.ID); err == nil && home != "" {
					row.homeCategory = home
				}
			}
			m.items = append(m.items, row)
		}
	}

	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selected() *item {
	if len(m.items) == 0 || m.cursor >= len(m.items) {
		return nil
	}
	return &m.items[m.cursor]
}

func (m *Model) toggleSelected() {
	row := m.selected()
	if row == nil {
		return
	}
	record := models.NewRecord(row.tracker.ID, m.day)
	if tracking.CompletedOn(m.records, row.tracker.ID, m.day) {
		m.err = m.service.DeleteRecord(record)
	} else {
		m.err = m.service.AddRecord(record)
	}
	m.refresh()
}

func (m *Model) cycleStatus() {
	switch m.status {
	case visibility.StatusAll:
		m.status = visibility.StatusForToday
	case visibility.StatusForToday:
		m.status = visibility.StatusCompleted
	case visibility.StatusCompleted:
		m.status = visibility.StatusUncompleted
	default:
		m.status = visibility.StatusAll
	}
	if m.status == visibility.StatusForToday {
		m.day = utils.Today()
	}
	m.refresh()
}
