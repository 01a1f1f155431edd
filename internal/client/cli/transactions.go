package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dvalero/finwallet/internal/client/models"
)

const transactionsPageSize = 20

// Transactions lists the most recent page of transactions.
func (a *App) Transactions(ctx context.Context) error {
	page, err := a.transactions.List(ctx, models.TransactionFilters{
		PageNumber: 1,
		PageSize:   transactionsPageSize,
	})
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(page.Data) == 0 {
		printlnFn("No transactions yet")
		return nil
	}

	for _, tx := range page.Data {
		printlnFn(fmt.Sprintf("%s  %-8s %10s %s  %-20s %s",
			tx.Date, tx.Type, tx.Amount, tx.Currency, tx.CategoryName, tx.Description))
	}
	printlnFn(fmt.Sprintf("Page %d of %d (%d total)", page.PageNumber, page.TotalPages, page.TotalCount))
	return nil
}

// AddExpense prompts for the expense fields and records the expense.
func (a *App) AddExpense(ctx context.Context) error {
	state := a.session.State()
	if !state.Authenticated() {
		printlnFn("Not logged in")
		return nil
	}

	req := models.CreateExpenseRequest{
		Date:     time.Now().Format("2006-01-02"),
		Currency: state.User.Currency,
	}

	var err error
	if req.Amount, err = getAmount(a.reader, "Amount", os.Stdout); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if req.Description, err = getSimpleText(a.reader, "Description", os.Stdout); err != nil {
		return err
	}
	if req.CategoryID, err = getSimpleText(a.reader, "Category id", os.Stdout); err != nil {
		return err
	}
	if req.AccountID, err = getSimpleText(a.reader, "Account id", os.Stdout); err != nil {
		return err
	}

	tx, err := a.transactions.CreateExpense(ctx, req)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Recorded expense %s %s (%s)", tx.Amount, tx.Currency, tx.ID))
	return nil
}

// AddIncome prompts for the income fields and records the income.
func (a *App) AddIncome(ctx context.Context) error {
	state := a.session.State()
	if !state.Authenticated() {
		printlnFn("Not logged in")
		return nil
	}

	req := models.CreateIncomeRequest{
		Date:     time.Now().Format("2006-01-02"),
		Currency: state.User.Currency,
	}

	var err error
	if req.Amount, err = getAmount(a.reader, "Amount", os.Stdout); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if req.Description, err = getSimpleText(a.reader, "Description", os.Stdout); err != nil {
		return err
	}
	if req.CategoryID, err = getSimpleText(a.reader, "Category id", os.Stdout); err != nil {
		return err
	}
	if req.AccountID, err = getSimpleText(a.reader, "Account id", os.Stdout); err != nil {
		return err
	}

	tx, err := a.transactions.CreateIncome(ctx, req)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Recorded income %s %s (%s)", tx.Amount, tx.Currency, tx.ID))
	return nil
}
