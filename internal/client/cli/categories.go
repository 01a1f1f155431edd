package cli

import (
	"context"
	"fmt"
)

// Categories lists all categories grouped the way the API returns them.
func (a *App) Categories(ctx context.Context) error {
	categories, err := a.categories.List(ctx, "")
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(categories) == 0 {
		printlnFn("No categories yet")
		return nil
	}

	for _, c := range categories {
		marker := ""
		if c.IsDefault {
			marker = " (default)"
		}
		printlnFn(fmt.Sprintf("%s  %-20s %-8s%s", c.ID, c.Name, c.TransactionType, marker))
	}
	return nil
}
