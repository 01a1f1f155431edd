package cli

import (
	"context"
	"fmt"
	"time"
)

// monthRange returns the first day of the current month and today, formatted
// the way the reporting endpoints expect.
func monthRange(now time.Time) (string, string) {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return from.Format("2006-01-02"), now.Format("2006-01-02")
}

// Dashboard prints the month-to-date financial summary, account overview,
// top spending categories and recent activity.
func (a *App) Dashboard(ctx context.Context) error {
	fromDate, toDate := monthRange(time.Now())

	summary, err := a.dashboard.FinancialSummary(ctx, fromDate, toDate)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("This month: income %s, expenses %s, net %s %s",
		summary.TotalIncome, summary.TotalExpenses, summary.NetBalance, summary.Currency))

	overview, err := a.dashboard.AccountOverview(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Total balance: %s %s across %d active accounts",
		overview.TotalBalance, overview.Currency, overview.ActiveAccountsCount))

	top, err := a.dashboard.TopCategories(ctx, fromDate, toDate)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if len(top) > 0 {
		printlnFn("Top categories:")
		for _, c := range top {
			printlnFn(fmt.Sprintf("  %-20s %10s  (%.1f%%)", c.CategoryName, c.Amount, c.Percentage))
		}
	}

	recent, err := a.dashboard.RecentTransactions(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if len(recent) > 0 {
		printlnFn("Recent activity:")
		for _, tx := range recent {
			printlnFn(fmt.Sprintf("  %s  %-8s %10s  %s", tx.Date, tx.Type, tx.Amount, tx.Description))
		}
	}

	return nil
}
