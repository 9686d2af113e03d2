package service

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kakeibo-dev/kakeibo-core/internal/domain"
)

// Calibration constants for the keyword heuristic. The boost values are tuned
// against real statement descriptions, not derived from a model.
const (
	keywordBaseConfidence = 0.80
	prefixMatchBoost      = 0.10
	longKeywordBoost      = 0.05
	longKeywordRatio      = 0.30

	securitiesConfidence = 0.95
	amountSignConfidence = 0.70
	defaultConfidence    = 0.50
)

// transferPatternWindow is the maximum gap between the two legs of an
// inter-account transfer. Exactly 3 days passes, anything longer fails.
const transferPatternWindow = 72 * time.Hour

// keywordRule binds one category type to its keyword dictionary. Rules are
// evaluated in slice order: more specific categories before generic ones.
// Within a rule the first matching keyword wins; there is no best-match
// search.
type keywordRule struct {
	category domain.CategoryType
	keywords []string
}

// ClassifierService assigns a category type to a transaction from its
// institution, description, and amount
type ClassifierService struct {
	rules []keywordRule
}

// NewClassifierService creates a new ClassifierService with the built-in
// keyword dictionaries
func NewClassifierService() *ClassifierService {
	return &ClassifierService{
		rules: []keywordRule{
			{domain.CategoryTypeRepayment, []string{
				"ローン", "返済", "借入", "カードローン", "loan", "repayment",
			}},
			{domain.CategoryTypeInvestment, []string{
				"投資", "証券", "株式", "投資信託", "積立", "nisa", "ideco", "investment",
			}},
			{domain.CategoryTypeTransfer, []string{
				"振替", "資金移動", "口座間", "transfer",
			}},
			{domain.CategoryTypeIncome, []string{
				"給与", "給料", "賞与", "ボーナス", "年金", "利息", "配当", "払戻", "salary", "bonus",
			}},
			{domain.CategoryTypeExpense, []string{
				"支払", "引落", "購入", "コンビニ", "スーパー", "電気", "ガス", "水道", "家賃", "通信料", "payment",
			}},
		},
	}
}

// Classify decides the category type for a transaction. Rules are evaluated
// in order and the first match wins:
//  1. securities institutions are always investment
//  2. keyword dictionaries (repayment, investment, transfer, income, expense)
//  3. amount sign (positive income, negative expense)
//  4. default expense
func (s *ClassifierService) Classify(tx *domain.Transaction, institutionType *domain.InstitutionType) *domain.ClassificationResult {
	if institutionType != nil && *institutionType == domain.InstitutionTypeSecurities {
		return newClassificationResult(
			domain.CategoryTypeInvestment, securitiesConfidence, "securities account transaction")
	}

	desc := strings.ToLower(tx.Description)
	for _, rule := range s.rules {
		for _, keyword := range rule.keywords {
			kw := strings.ToLower(keyword)
			if !strings.Contains(desc, kw) {
				continue
			}
			confidence := keywordBaseConfidence
			if strings.HasPrefix(desc, kw) {
				confidence += prefixMatchBoost
			}
			kwLen := utf8.RuneCountInString(kw)
			descLen := utf8.RuneCountInString(desc)
			if descLen > 0 && float64(kwLen) > longKeywordRatio*float64(descLen) {
				confidence += longKeywordBoost
			}
			if confidence > 1.0 {
				confidence = 1.0
			}
			return newClassificationResult(
				rule.category, confidence, fmt.Sprintf("keyword match: %q", keyword))
		}
	}

	switch tx.Amount.Sign() {
	case 1:
		return newClassificationResult(
			domain.CategoryTypeIncome, amountSignConfidence, "deposit transaction (positive amount)")
	case -1:
		return newClassificationResult(
			domain.CategoryTypeExpense, amountSignConfidence, "withdrawal transaction (negative amount)")
	}

	return newClassificationResult(
		domain.CategoryTypeExpense, defaultConfidence, "default classification (expense)")
}

// EvaluateConfidence maps a numeric confidence score to its band.
func (s *ClassifierService) EvaluateConfidence(score float64) domain.ConfidenceLevel {
	return confidenceBand(score)
}

func confidenceBand(score float64) domain.ConfidenceLevel {
	switch {
	case score >= 0.90:
		return domain.ConfidenceHigh
	case score >= 0.70:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

// IsTransferPattern reports whether two transactions plausibly form the two
// legs of one inter-account transfer: equal absolute amounts with opposite
// signs, different institutions, and dates no more than 3 days apart.
// Not part of the Classify pipeline yet; used standalone.
func (s *ClassifierService) IsTransferPattern(a, b *domain.Transaction) bool {
	if a.Amount.IsZero() || b.Amount.IsZero() {
		return false
	}
	if !a.Amount.Abs().Equal(b.Amount.Abs()) {
		return false
	}
	if a.Amount.Sign() == b.Amount.Sign() {
		return false
	}
	if a.InstitutionID == nil || b.InstitutionID == nil || *a.InstitutionID == *b.InstitutionID {
		return false
	}
	gap := a.Date.Sub(b.Date)
	if gap < 0 {
		gap = -gap
	}
	return gap <= transferPatternWindow
}

func newClassificationResult(category domain.CategoryType, confidence float64, reason string) *domain.ClassificationResult {
	return &domain.ClassificationResult{
		Category:        category,
		Confidence:      confidence,
		ConfidenceLevel: confidenceBand(confidence),
		Reason:          reason,
	}
}
