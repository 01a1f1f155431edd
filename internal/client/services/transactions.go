package services

import (
	"context"

	"github.com/dvalero/finwallet/internal/client/models"
)

type TransactionService interface {
	List(ctx context.Context, filters models.TransactionFilters) (*models.TransactionPage, error)
	CreateExpense(ctx context.Context, req models.CreateExpenseRequest) (*models.Transaction, error)
	CreateIncome(ctx context.Context, req models.CreateIncomeRequest) (*models.Transaction, error)
	IncomeSources(ctx context.Context) ([]models.IncomeSource, error)
}

type transactionService struct {
	api Caller
}

func NewTransactionService(api Caller) TransactionService {
	return &transactionService{api: api}
}

// List fetches a page of transactions from the expenses endpoint. The
// endpoint does not label its records, so records without a type default to
// Expense; a server-provided type is kept as-is. Income records come from a
// separate endpoint and keep their own labels.
func (s *transactionService) List(ctx context.Context, filters models.TransactionFilters) (*models.TransactionPage, error) {
	var page models.TransactionPage
	if err := s.api.Get(ctx, "/api/Expenses", filters.Values(), &page); err != nil {
		return nil, err
	}

	for i := range page.Data {
		if page.Data[i].Type == "" {
			page.Data[i].Type = models.TransactionTypeExpense
		}
	}
	return &page, nil
}

func (s *transactionService) CreateExpense(ctx context.Context, req models.CreateExpenseRequest) (*models.Transaction, error) {
	var tx models.Transaction
	if err := s.api.Post(ctx, "/api/Expenses", req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (s *transactionService) CreateIncome(ctx context.Context, req models.CreateIncomeRequest) (*models.Transaction, error) {
	var tx models.Transaction
	if err := s.api.Post(ctx, "/api/Income", req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (s *transactionService) IncomeSources(ctx context.Context) ([]models.IncomeSource, error) {
	var sources []models.IncomeSource
	if err := s.api.Get(ctx, "/api/Income/sources", nil, &sources); err != nil {
		return nil, err
	}
	return sources, nil
}
