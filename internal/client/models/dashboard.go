package models

import "github.com/shopspring/decimal"

// FinancialSummary totals income and expenses over a reporting period.
type FinancialSummary struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetBalance    decimal.Decimal `json:"netBalance"`
	Currency      string          `json:"currency"`
}

// AccountOverview is the condensed account figure shown on the dashboard.
type AccountOverview struct {
	TotalBalance        decimal.Decimal `json:"totalBalance"`
	Currency            string          `json:"currency"`
	ActiveAccountsCount int             `json:"activeAccountsCount"`
}

type CategoryBreakdown struct {
	CategoryID    string          `json:"categoryId"`
	CategoryName  string          `json:"categoryName"`
	CategoryColor string          `json:"categoryColor,omitempty"`
	Percentage    float64         `json:"percentage"`
	Amount        decimal.Decimal `json:"amount"`
}

type DailySummary struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}
