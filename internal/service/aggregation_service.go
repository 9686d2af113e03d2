package service

import (
	"fmt"
	"sort"

	"github.com/kakeibo-dev/kakeibo-core/internal/domain"
	"github.com/shopspring/decimal"
)

// AggregationService handles income/expense rollup calculations
type AggregationService struct{}

// NewAggregationService creates a new AggregationService
func NewAggregationService() *AggregationService {
	return &AggregationService{}
}

// AggregateByType sums and counts the transactions of one category type.
// Percentage is the type's signed share of the grand total across ALL
// supplied transactions, one decimal place, zero when the grand total is
// zero. An unknown targetType is an input error, not a silent zero result.
func (s *AggregationService) AggregateByType(transactions []*domain.Transaction, targetType domain.CategoryType) (*domain.CategoryAggregationResult, error) {
	if !targetType.IsValid() {
		return nil, fmt.Errorf("aggregate by type %q: %w", targetType, domain.ErrInvalidCategoryType)
	}

	grandTotal := decimal.Zero
	total := decimal.Zero
	count := 0
	for _, tx := range transactions {
		grandTotal = grandTotal.Add(tx.Amount)
		if tx.Category.Type == targetType {
			total = total.Add(tx.Amount)
			count++
		}
	}

	return &domain.CategoryAggregationResult{
		Category:         targetType,
		TotalAmount:      total,
		TransactionCount: count,
		Percentage:       percentageOf(total, grandTotal),
	}, nil
}

// subtotal is the first-pass accumulator for one category id.
type subtotal struct {
	total decimal.Decimal
	count int
}

// AggregateBySubcategory groups transactions by category id and computes
// total, count, average, and share of the grand total for each group. Two
// passes: accumulate all totals first, then derive average and percentage
// into a fresh result map once the grand total is known.
func (s *AggregationService) AggregateBySubcategory(transactions []*domain.Transaction) (map[string]*domain.SubcategoryAggregationResult, error) {
	grandTotal := decimal.Zero
	subtotals := make(map[string]*subtotal)
	for _, tx := range transactions {
		if !tx.Category.Type.IsValid() {
			return nil, fmt.Errorf("transaction %s has category type %q: %w",
				tx.ID, tx.Category.Type, domain.ErrInvalidCategoryType)
		}
		grandTotal = grandTotal.Add(tx.Amount)
		st, ok := subtotals[tx.Category.ID]
		if !ok {
			st = &subtotal{total: decimal.Zero}
			subtotals[tx.Category.ID] = st
		}
		st.total = st.total.Add(tx.Amount)
		st.count++
	}

	results := make(map[string]*domain.SubcategoryAggregationResult, len(subtotals))
	for id, st := range subtotals {
		results[id] = &domain.SubcategoryAggregationResult{
			ItemID:           id,
			TotalAmount:      st.total,
			TransactionCount: st.count,
			AverageAmount:    averageOf(st.total, st.count),
			Percentage:       percentageOf(st.total, grandTotal),
			Children:         make([]*domain.SubcategoryAggregationResult, 0),
		}
	}
	return results, nil
}

// AggregateHierarchy builds one result node per supplied category, links them
// by ParentID, and rolls every child's totals up into its ancestors. The
// rollup is a post-order traversal from the roots: a parent absorbs a child
// only after that child has absorbed its own subtree, so chains of any depth
// roll up correctly regardless of input order. Categories with no
// transactions anywhere in their subtree yield all-zero nodes.
func (s *AggregationService) AggregateHierarchy(transactions []*domain.Transaction, categories []*domain.Category) ([]*domain.SubcategoryAggregationResult, error) {
	flat, err := s.AggregateBySubcategory(transactions)
	if err != nil {
		return nil, err
	}

	grandTotal := decimal.Zero
	for _, tx := range transactions {
		grandTotal = grandTotal.Add(tx.Amount)
	}

	byID := make(map[string]*domain.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	nodes := make(map[string]*domain.SubcategoryAggregationResult, len(categories))
	childIDs := make(map[string][]string)
	roots := make([]string, 0)
	for _, c := range categories {
		node := &domain.SubcategoryAggregationResult{
			ItemID:      c.ID,
			TotalAmount: decimal.Zero,
			Children:    make([]*domain.SubcategoryAggregationResult, 0),
		}
		if own, ok := flat[c.ID]; ok {
			node.TotalAmount = own.TotalAmount
			node.TransactionCount = own.TransactionCount
		}
		nodes[c.ID] = node

		if c.ParentID == nil {
			roots = append(roots, c.ID)
			continue
		}
		if _, ok := byID[*c.ParentID]; !ok {
			// A dangling parent reference would silently understate rollups,
			// so it is surfaced as a data-integrity error.
			return nil, fmt.Errorf("category %s references parent %s: %w",
				c.ID, *c.ParentID, domain.ErrUnknownParentCategory)
		}
		childIDs[*c.ParentID] = append(childIDs[*c.ParentID], c.ID)
	}

	var fold func(id string)
	fold = func(id string) {
		node := nodes[id]
		ids := childIDs[id]
		sort.SliceStable(ids, func(i, j int) bool {
			return byID[ids[i]].Order < byID[ids[j]].Order
		})
		for _, childID := range ids {
			fold(childID)
			child := nodes[childID]
			node.TotalAmount = node.TotalAmount.Add(child.TotalAmount)
			node.TransactionCount += child.TransactionCount
			node.Children = append(node.Children, child)
		}
	}
	sort.SliceStable(roots, func(i, j int) bool {
		return byID[roots[i]].Order < byID[roots[j]].Order
	})
	for _, id := range roots {
		fold(id)
	}

	// Derived metrics are computed only after the fold so parents use their
	// rolled-up totals.
	for _, node := range nodes {
		node.AverageAmount = averageOf(node.TotalAmount, node.TransactionCount)
		node.Percentage = percentageOf(node.TotalAmount, grandTotal)
	}

	results := make([]*domain.SubcategoryAggregationResult, 0, len(roots))
	for _, id := range roots {
		results = append(results, nodes[id])
	}
	return results, nil
}

// percentageOf returns part/whole*100 rounded to one decimal place, zero when
// the whole is zero.
func percentageOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100)).Round(1)
}

// averageOf returns total/count rounded to the nearest integer, half away
// from zero, and zero when the count is zero.
func averageOf(total decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count))).Round(0)
}
