package system

import (
	"fmt"
	"os"

	"github.com/akarpova/trackly/internal/cli"
)

type InitCmd struct {
	Force bool `short:"f" help:"Reinitialize even if storage already exists."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := os.Remove(ctx.Store.GetConfigPath()); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized trackly storage at %s\n", ctx.Store.GetConfigPath())
	return nil
}
