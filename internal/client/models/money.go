package models

import "github.com/shopspring/decimal"

func init() {
	// The API serializes amounts as bare JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}
