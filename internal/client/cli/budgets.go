package cli

import (
	"context"
	"fmt"
)

// Budgets lists budgets with their spending progress.
func (a *App) Budgets(ctx context.Context) error {
	budgets, err := a.budgets.List(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(budgets) == 0 {
		printlnFn("No budgets yet")
		return nil
	}

	for _, b := range budgets {
		printlnFn(fmt.Sprintf("%-20s %s: %s of %s %s  (%.1f%%)",
			b.CategoryName, b.Period, b.SpentAmount, b.Amount, b.Currency, b.Percentage))
	}
	return nil
}

// Goals lists savings goals and how close each one is to its target.
func (a *App) Goals(ctx context.Context) error {
	goals, err := a.budgets.SavingsGoals(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(goals) == 0 {
		printlnFn("No savings goals yet")
		return nil
	}

	for _, g := range goals {
		printlnFn(fmt.Sprintf("%-20s %s of %s %s by %s  [%s]",
			g.Name, g.CurrentAmount, g.TargetAmount, g.Currency, g.TargetDate, g.Status))
	}
	return nil
}
