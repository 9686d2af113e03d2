package domain

import "github.com/shopspring/decimal"

// CategoryAggregationResult is the rollup for one category type over a set of
// transactions. Percentage is the type's share of the grand total across all
// supplied transactions, rounded to one decimal place.
type CategoryAggregationResult struct {
	Category         CategoryType    `json:"category"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	TransactionCount int             `json:"transactionCount"`
	Percentage       decimal.Decimal `json:"percentage"`
}

// SubcategoryAggregationResult is the rollup for one category id. In
// hierarchy mode a parent's totals include every descendant's totals.
type SubcategoryAggregationResult struct {
	ItemID           string                          `json:"itemId"`
	TotalAmount      decimal.Decimal                 `json:"totalAmount"`
	TransactionCount int                             `json:"transactionCount"`
	AverageAmount    decimal.Decimal                 `json:"averageAmount"`
	Percentage       decimal.Decimal                 `json:"percentage"`
	Children         []*SubcategoryAggregationResult `json:"children"`
}

// TrendPoint is one calendar month's totals. Month is "YYYY-MM".
type TrendPoint struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}
