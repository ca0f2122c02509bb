package categories

import (
	"fmt"

	"github.com/akarpova/trackly/internal/cli"
	"github.com/akarpova/trackly/internal/validation"
)

type CategoryAddCmd struct {
	Name string `arg:"" help:"Category name."`
}

func (c *CategoryAddCmd) Validate() error {
	return validation.ValidateCategoryName(c.Name)
}

func (c *CategoryAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Service.AddCategory(c.Name); err != nil {
		return err
	}
	fmt.Printf("Added category: %s\n", c.Name)
	return nil
}
