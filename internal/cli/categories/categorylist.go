package categories

import (
	"fmt"

	"github.com/akarpova/trackly/internal/cli"
)

type CategoryListCmd struct{}

func (c *CategoryListCmd) Run(ctx *cli.Context) error {
	categories, skipped, err := ctx.Service.Categories()
	if err != nil {
		return err
	}

	if len(categories) == 0 {
		fmt.Println("No categories yet. Add one with 'trackly category add <name>'.")
		return nil
	}

	for _, category := range categories {
		fmt.Printf("%s (%d trackers)\n", category.Title, len(category.Trackers))
	}
	if skipped > 0 {
		fmt.Printf("Warning: %d row(s) could not be decoded and were skipped.\n", skipped)
	}
	return nil
}
