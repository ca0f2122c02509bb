package cli

import "fmt"

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	completed, err := ctx.Service.CompletedCount()
	if err != nil {
		return err
	}
	categories, err := ctx.Service.CategoriesAmount()
	if err != nil {
		return err
	}

	fmt.Printf("Categories:         %d\n", categories)
	fmt.Printf("Trackers completed: %d\n", completed)
	return nil
}
