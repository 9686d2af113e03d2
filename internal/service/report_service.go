package service

import (
	"time"

	"github.com/kakeibo-dev/kakeibo-core/internal/domain"
	"github.com/rs/zerolog/log"
)

// ReportService composes the repositories with the classification and
// aggregation services to produce the dashboard report payloads
type ReportService struct {
	categoryRepo    domain.CategoryRepository
	transactionRepo domain.TransactionRepository
	categorySvc     *CategoryService
	classifier      *ClassifierService
	aggregation     *AggregationService
	trend           *TrendService
}

// NewReportService creates a new ReportService
func NewReportService(
	categoryRepo domain.CategoryRepository,
	transactionRepo domain.TransactionRepository,
	categorySvc *CategoryService,
	classifier *ClassifierService,
	aggregation *AggregationService,
	trend *TrendService,
) *ReportService {
	return &ReportService{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		categorySvc:     categorySvc,
		classifier:      classifier,
		aggregation:     aggregation,
		trend:           trend,
	}
}

// GetTypeBreakdown returns one aggregation result per category type for the
// date range, in the fixed display order of the five types. The five totals
// sum to the range's grand total.
func (s *ReportService) GetTypeBreakdown(start, end time.Time) ([]*domain.CategoryAggregationResult, error) {
	transactions, err := s.transactionRepo.FindByDateRange(start, end)
	if err != nil {
		return nil, err
	}

	results := make([]*domain.CategoryAggregationResult, 0, len(domain.CategoryTypes))
	for _, t := range domain.CategoryTypes {
		result, err := s.aggregation.AggregateByType(transactions, t)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// GetSubcategoryReport returns the per-category hierarchy rollup for the
// date range, using the full category list for structure.
func (s *ReportService) GetSubcategoryReport(start, end time.Time) ([]*domain.SubcategoryAggregationResult, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactionRepo.FindByDateRange(start, end)
	if err != nil {
		return nil, err
	}

	results, err := s.aggregation.AggregateHierarchy(transactions, categories)
	if err != nil {
		log.Warn().Err(err).
			Time("start", start).
			Time("end", end).
			Msg("Subcategory hierarchy aggregation failed")
		return nil, err
	}
	return results, nil
}

// GetCategoryTree returns the two-level category display tree.
func (s *ReportService) GetCategoryTree() ([]*domain.CategoryNode, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return s.categorySvc.BuildTree(categories), nil
}

// GetTrend returns per-month totals for the date range.
func (s *ReportService) GetTrend(start, end time.Time) ([]domain.TrendPoint, error) {
	transactions, err := s.transactionRepo.FindByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return s.trend.CalculateTrend(transactions, start, end), nil
}

// GetTopTransactions returns the largest transactions of the date range by
// absolute amount.
func (s *ReportService) GetTopTransactions(start, end time.Time, limit int) ([]*domain.Transaction, error) {
	transactions, err := s.transactionRepo.FindByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return s.trend.TopTransactions(transactions, limit), nil
}

// SuggestCategory classifies a transaction projection and returns the
// suggested category type. Low-confidence suggestions are logged so they can
// be reviewed before auto-assignment.
func (s *ReportService) SuggestCategory(tx *domain.Transaction) *domain.ClassificationResult {
	result := s.classifier.Classify(tx, tx.InstitutionType)
	if result.ConfidenceLevel == domain.ConfidenceLow {
		log.Debug().
			Str("transactionId", tx.ID).
			Float64("confidence", result.Confidence).
			Str("reason", result.Reason).
			Msg("Low confidence category suggestion")
	}
	return result
}
