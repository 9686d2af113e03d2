package service

import (
	"sort"
	"time"

	"github.com/kakeibo-dev/kakeibo-core/internal/domain"
	"github.com/kakeibo-dev/kakeibo-core/internal/util"
	"github.com/shopspring/decimal"
)

// DefaultTopTransactionLimit is the usual page size for the largest-
// transactions widget.
const DefaultTopTransactionLimit = 5

// TrendService handles month-over-month trend bucketing and the top
// transactions listing
type TrendService struct{}

// NewTrendService creates a new TrendService
func NewTrendService() *TrendService {
	return &TrendService{}
}

// CalculateTrend buckets transactions by calendar month and returns one
// point per month present, sorted ascending by month key. The calculator
// filters to [start, end] inclusive itself; callers do not need to pre-filter.
func (s *TrendService) CalculateTrend(transactions []*domain.Transaction, start, end time.Time) []domain.TrendPoint {
	buckets := make(map[string]*domain.TrendPoint)
	for _, tx := range transactions {
		if tx.Date.Before(start) || tx.Date.After(end) {
			continue
		}
		key := util.MonthKey(tx.Date)
		point, ok := buckets[key]
		if !ok {
			point = &domain.TrendPoint{Month: key, Amount: decimal.Zero}
			buckets[key] = point
		}
		point.Amount = point.Amount.Add(tx.Amount)
		point.Count++
	}

	months := make([]string, 0, len(buckets))
	for key := range buckets {
		months = append(months, key)
	}
	sort.Strings(months)

	trend := make([]domain.TrendPoint, 0, len(months))
	for _, key := range months {
		trend = append(trend, *buckets[key])
	}
	return trend
}

// TopTransactions returns at most limit transactions ordered by descending
// absolute amount. The sort is stable: equal absolute amounts keep their
// input order. A limit of zero or less yields an empty slice.
func (s *TrendService) TopTransactions(transactions []*domain.Transaction, limit int) []*domain.Transaction {
	if limit <= 0 {
		return []*domain.Transaction{}
	}

	sorted := make([]*domain.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.Abs().GreaterThan(sorted[j].Amount.Abs())
	})

	if limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted
}
