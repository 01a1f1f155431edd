package models

import "github.com/shopspring/decimal"

const (
	AccountStatusActive   = "Active"
	AccountStatusInactive = "Inactive"
)

type Account struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	Balance         decimal.Decimal `json:"balance"`
	Currency        string          `json:"currency"`
	Color           string          `json:"color,omitempty"`
	Icon            string          `json:"icon,omitempty"`
	AccountNumber   string          `json:"accountNumber,omitempty"`
	InstitutionName string          `json:"institutionName,omitempty"`
	Status          string          `json:"status"`
}

type CreateAccountRequest struct {
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	InitialBalance  decimal.Decimal `json:"initialBalance"`
	Currency        string          `json:"currency"`
	Color           string          `json:"color,omitempty"`
	Icon            string          `json:"icon,omitempty"`
	AccountNumber   string          `json:"accountNumber,omitempty"`
	InstitutionName string          `json:"institutionName,omitempty"`
}

type UpdateAccountRequest struct {
	Name            string `json:"name"`
	Type            string `json:"type"`
	Currency        string `json:"currency"`
	Color           string `json:"color,omitempty"`
	Icon            string `json:"icon,omitempty"`
	AccountNumber   string `json:"accountNumber,omitempty"`
	InstitutionName string `json:"institutionName,omitempty"`
	IsActive        bool   `json:"isActive"`
}

// AccountSummary aggregates balances across all accounts.
type AccountSummary struct {
	TotalBalance   decimal.Decimal `json:"totalBalance"`
	AccountCount   int             `json:"accountCount"`
	MonthlyIncome  decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpense decimal.Decimal `json:"monthlyExpense"`
}

type TransferRequest struct {
	FromAccountID string          `json:"fromAccountId"`
	ToAccountID   string          `json:"toAccountId"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	Description   string          `json:"description,omitempty"`
}
