package models

import "github.com/shopspring/decimal"

const (
	BudgetPeriodMonthly = "Monthly"
	BudgetPeriodYearly  = "Yearly"
)

type Budget struct {
	ID           string          `json:"id"`
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Amount       decimal.Decimal `json:"amount"`
	SpentAmount  decimal.Decimal `json:"spentAmount"`
	Currency     string          `json:"currency"`
	Period       string          `json:"period"`
	StartDate    string          `json:"startDate"`
	EndDate      string          `json:"endDate"`
	Percentage   float64         `json:"percentage"`
}

type CreateBudgetRequest struct {
	CategoryID string          `json:"categoryId"`
	Amount     decimal.Decimal `json:"amount"`
	Period     string          `json:"period"`
	StartDate  string          `json:"startDate"`
	EndDate    string          `json:"endDate"`
	Currency   string          `json:"currency"`
}

type UpdateBudgetRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Period    string          `json:"period"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
}

type BudgetProgress struct {
	BudgetID        string          `json:"budgetId"`
	CategoryName    string          `json:"categoryName"`
	AllocatedAmount decimal.Decimal `json:"allocatedAmount"`
	SpentAmount     decimal.Decimal `json:"spentAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	PercentageUsed  float64         `json:"percentageUsed"`
	DaysRemaining   int             `json:"daysRemaining"`
	Status          string          `json:"status"`
}

type SavingsGoal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    string          `json:"targetDate"`
	Status        string          `json:"status"`
	Currency      string          `json:"currency"`
}
