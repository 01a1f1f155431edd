package models

import (
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeExpense = "Expense"
	TransactionTypeIncome  = "Income"
)

type Transaction struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Description   string          `json:"description"`
	Date          string          `json:"date"`
	CategoryName  string          `json:"categoryName"`
	CategoryColor string          `json:"categoryColor,omitempty"`
	AccountName   string          `json:"accountName"`
	Type          string          `json:"type"`
}

// TransactionPage is the paginated envelope the API wraps transaction
// listings in.
type TransactionPage struct {
	Data            []Transaction `json:"data"`
	PageNumber      int           `json:"pageNumber"`
	PageSize        int           `json:"pageSize"`
	TotalCount      int           `json:"totalCount"`
	TotalPages      int           `json:"totalPages"`
	HasPreviousPage bool          `json:"hasPreviousPage"`
	HasNextPage     bool          `json:"hasNextPage"`
}

// TransactionFilters narrows a transaction listing. Zero values mean
// "not set" and are omitted from the query string.
type TransactionFilters struct {
	PageNumber int
	PageSize   int
	CategoryID string
	FromDate   string
	ToDate     string
	Search     string
}

// Values renders the filters as URL query parameters.
func (f TransactionFilters) Values() url.Values {
	v := url.Values{}
	if f.PageNumber > 0 {
		v.Set("pageNumber", strconv.Itoa(f.PageNumber))
	}
	if f.PageSize > 0 {
		v.Set("pageSize", strconv.Itoa(f.PageSize))
	}
	if f.CategoryID != "" {
		v.Set("categoryId", f.CategoryID)
	}
	if f.FromDate != "" {
		v.Set("fromDate", f.FromDate)
	}
	if f.ToDate != "" {
		v.Set("toDate", f.ToDate)
	}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	return v
}

type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CategoryID  string          `json:"categoryId"`
	AccountID   string          `json:"accountId"`
	Date        string          `json:"date"`
	Currency    string          `json:"currency"`
}

type CreateIncomeRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CategoryID  string          `json:"categoryId"`
	AccountID   string          `json:"accountId"`
	Date        string          `json:"date"`
	Currency    string          `json:"currency"`
}

type IncomeSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
