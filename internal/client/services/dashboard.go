package services

import (
	"context"
	"net/url"

	"github.com/dvalero/finwallet/internal/client/models"
)

// recentTransactionsPageSize caps the dashboard's recent-activity list.
const recentTransactionsPageSize = 5

type DashboardService interface {
	FinancialSummary(ctx context.Context, fromDate, toDate string) (*models.FinancialSummary, error)
	AccountOverview(ctx context.Context) (*models.AccountOverview, error)
	TopCategories(ctx context.Context, fromDate, toDate string) ([]models.CategoryBreakdown, error)
	RecentTransactions(ctx context.Context) ([]models.Transaction, error)
	DailyExpenses(ctx context.Context, fromDate, toDate string) ([]models.DailySummary, error)
}

type dashboardService struct {
	api Caller
}

func NewDashboardService(api Caller) DashboardService {
	return &dashboardService{api: api}
}

func dateRange(fromDate, toDate string) url.Values {
	return url.Values{"fromDate": {fromDate}, "toDate": {toDate}}
}

func (s *dashboardService) FinancialSummary(ctx context.Context, fromDate, toDate string) (*models.FinancialSummary, error) {
	var summary models.FinancialSummary
	if err := s.api.Get(ctx, "/api/Reports/summary", dateRange(fromDate, toDate), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *dashboardService) AccountOverview(ctx context.Context) (*models.AccountOverview, error) {
	var overview models.AccountOverview
	if err := s.api.Get(ctx, "/api/Accounts/summary", nil, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

func (s *dashboardService) TopCategories(ctx context.Context, fromDate, toDate string) ([]models.CategoryBreakdown, error) {
	var breakdown []models.CategoryBreakdown
	if err := s.api.Get(ctx, "/api/Expenses/summary/category", dateRange(fromDate, toDate), &breakdown); err != nil {
		return nil, err
	}
	return breakdown, nil
}

func (s *dashboardService) RecentTransactions(ctx context.Context) ([]models.Transaction, error) {
	filters := models.TransactionFilters{PageNumber: 1, PageSize: recentTransactionsPageSize}

	var page models.TransactionPage
	if err := s.api.Get(ctx, "/api/Expenses", filters.Values(), &page); err != nil {
		return nil, err
	}
	return page.Data, nil
}

func (s *dashboardService) DailyExpenses(ctx context.Context, fromDate, toDate string) ([]models.DailySummary, error) {
	var daily []models.DailySummary
	if err := s.api.Get(ctx, "/api/Expenses/summary/daily", dateRange(fromDate, toDate), &daily); err != nil {
		return nil, err
	}
	return daily, nil
}
