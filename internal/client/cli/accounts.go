package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dvalero/finwallet/internal/client/models"
)

// Accounts lists all accounts with their balances.
func (a *App) Accounts(ctx context.Context) error {
	accounts, err := a.accounts.List(ctx, false)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(accounts) == 0 {
		printlnFn("No accounts yet")
		return nil
	}

	for _, acc := range accounts {
		printlnFn(fmt.Sprintf("%s  %-20s %-10s %12s %s  [%s]",
			acc.ID, acc.Name, acc.Type, acc.Balance, acc.Currency, acc.Status))
	}
	return nil
}

// Transfer prompts for source, destination and amount and moves money
// between two accounts.
func (a *App) Transfer(ctx context.Context) error {
	req := models.TransferRequest{Date: time.Now().Format("2006-01-02")}

	var err error
	if req.FromAccountID, err = getSimpleText(a.reader, "From account id", os.Stdout); err != nil {
		return err
	}
	if req.ToAccountID, err = getSimpleText(a.reader, "To account id", os.Stdout); err != nil {
		return err
	}
	if req.Amount, err = getAmount(a.reader, "Amount", os.Stdout); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if req.Description, err = getSimpleText(a.reader, "Description (optional)", os.Stdout); err != nil {
		return err
	}

	if err := a.accounts.Transfer(ctx, req); err != nil {
		printlnFn("Transfer failed:", err.Error())
		return err
	}

	printlnFn("Transfer complete")
	return nil
}
