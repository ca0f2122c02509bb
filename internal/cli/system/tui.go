package system

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpova/trackly/internal/cli"
	"github.com/akarpova/trackly/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	p := tea.NewProgram(tui.NewModel(ctx.Service), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
