package service

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/kakeibo-dev/kakeibo-core/internal/domain"
	"github.com/shopspring/decimal"
)

const confidenceTolerance = 1e-9

func instPtr(t domain.InstitutionType) *domain.InstitutionType {
	return &t
}

func classifyInput(amount string, description string) *domain.Transaction {
	return &domain.Transaction{
		ID:          "tx-1",
		Amount:      decimal.RequireFromString(amount),
		Description: description,
	}
}

func assertConfidence(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > confidenceTolerance {
		t.Errorf("Confidence = %v, want %v", got, want)
	}
}

func TestClassify_SecuritiesInstitutionOverride(t *testing.T) {
	svc := NewClassifierService()

	// The institution override wins even when the description contains an
	// income keyword.
	result := svc.Classify(classifyInput("-50000", "給与振込"), instPtr(domain.InstitutionTypeSecurities))

	if result.Category != domain.CategoryTypeInvestment {
		t.Errorf("Category = %s, want investment", result.Category)
	}
	assertConfidence(t, result.Confidence, 0.95)
	if result.ConfidenceLevel != domain.ConfidenceHigh {
		t.Errorf("ConfidenceLevel = %s, want high", result.ConfidenceLevel)
	}
	if result.Reason != "securities account transaction" {
		t.Errorf("Reason = %q", result.Reason)
	}
}

func TestClassify_RepaymentBeforeIncome(t *testing.T) {
	svc := NewClassifierService()

	// Contains both a repayment keyword (ローン) and an income keyword (給与);
	// the repayment dictionary is evaluated first.
	result := svc.Classify(classifyInput("100000", "給与からローン返済"), nil)

	if result.Category != domain.CategoryTypeRepayment {
		t.Errorf("Category = %s, want repayment", result.Category)
	}
	// base 0.80 + 0.05 length-ratio boost (3 of 9 runes), no prefix boost
	assertConfidence(t, result.Confidence, 0.85)
	if result.Reason != `keyword match: "ローン"` {
		t.Errorf("Reason = %q", result.Reason)
	}
}

func TestClassify_KeywordBoosts(t *testing.T) {
	svc := NewClassifierService()

	tests := []struct {
		name           string
		description    string
		wantCategory   domain.CategoryType
		wantConfidence float64
	}{
		{
			// prefix + length ratio
			name:           "description is exactly the keyword",
			description:    "給与",
			wantCategory:   domain.CategoryTypeIncome,
			wantConfidence: 0.95,
		},
		{
			// prefix only: keyword is 2 of 13 runes
			name:           "prefix match on long description",
			description:    "給与振込とその他の明細です",
			wantCategory:   domain.CategoryTypeIncome,
			wantConfidence: 0.90,
		},
		{
			// neither boost: 支払 is mid-string and 2 of 16 runes
			name:           "plain substring match",
			description:    "スーパーでの購入代金の支払いです",
			wantCategory:   domain.CategoryTypeExpense,
			wantConfidence: 0.80,
		},
		{
			// latin keywords match case-insensitively, both boosts apply
			name:           "uppercase latin keyword",
			description:    "SALARY PAYMENT",
			wantCategory:   domain.CategoryTypeIncome,
			wantConfidence: 0.95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.Classify(classifyInput("0", tt.description), nil)
			if result.Category != tt.wantCategory {
				t.Errorf("Category = %s, want %s", result.Category, tt.wantCategory)
			}
			assertConfidence(t, result.Confidence, tt.wantConfidence)
		})
	}
}

func TestClassify_FirstKeywordInDictionaryWins(t *testing.T) {
	svc := NewClassifierService()

	// スーパー appears earlier in the text, but 支払 comes first in the expense
	// dictionary and there is no best-match search.
	result := svc.Classify(classifyInput("0", "スーパーでの購入代金の支払いです"), nil)
	if result.Reason != `keyword match: "支払"` {
		t.Errorf("Reason = %q, want keyword match on 支払", result.Reason)
	}
}

func TestClassify_AmountSignFallback(t *testing.T) {
	svc := NewClassifierService()

	tests := []struct {
		name         string
		amount       string
		wantCategory domain.CategoryType
		wantConf     float64
		wantReason   string
	}{
		{"positive amount", "5000", domain.CategoryTypeIncome, 0.70, "deposit transaction (positive amount)"},
		{"negative amount", "-5000", domain.CategoryTypeExpense, 0.70, "withdrawal transaction (negative amount)"},
		{"zero amount", "0", domain.CategoryTypeExpense, 0.50, "default classification (expense)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.Classify(classifyInput(tt.amount, "ABC123"), nil)
			if result.Category != tt.wantCategory {
				t.Errorf("Category = %s, want %s", result.Category, tt.wantCategory)
			}
			assertConfidence(t, result.Confidence, tt.wantConf)
			if result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	svc := NewClassifierService()

	input := classifyInput("-3200", "コンビニ払い")
	first := svc.Classify(input, instPtr(domain.InstitutionTypeBank))
	second := svc.Classify(input, instPtr(domain.InstitutionTypeBank))

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Classify is not deterministic: %+v vs %+v", first, second)
	}
}

func TestEvaluateConfidence_Bands(t *testing.T) {
	svc := NewClassifierService()

	tests := []struct {
		score float64
		want  domain.ConfidenceLevel
	}{
		{0.95, domain.ConfidenceHigh},
		{0.9, domain.ConfidenceHigh},
		{0.89999, domain.ConfidenceMedium},
		{0.7, domain.ConfidenceMedium},
		{0.69999, domain.ConfidenceLow},
		{0.5, domain.ConfidenceLow},
		{0, domain.ConfidenceLow},
	}

	for _, tt := range tests {
		if got := svc.EvaluateConfidence(tt.score); got != tt.want {
			t.Errorf("EvaluateConfidence(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func transferLeg(amount string, institutionID string, date time.Time) *domain.Transaction {
	return &domain.Transaction{
		Amount:        decimal.RequireFromString(amount),
		InstitutionID: &institutionID,
		Date:          date,
	}
}

func TestIsTransferPattern(t *testing.T) {
	svc := NewClassifierService()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a    *domain.Transaction
		b    *domain.Transaction
		want bool
	}{
		{
			name: "matching legs two days apart",
			a:    transferLeg("-50000", "inst-a", base),
			b:    transferLeg("50000", "inst-b", base.AddDate(0, 0, 2)),
			want: true,
		},
		{
			name: "exactly three days apart",
			a:    transferLeg("-50000", "inst-a", base),
			b:    transferLeg("50000", "inst-b", base.Add(72*time.Hour)),
			want: true,
		},
		{
			name: "three and a half days apart",
			a:    transferLeg("-50000", "inst-a", base),
			b:    transferLeg("50000", "inst-b", base.Add(84*time.Hour)),
			want: false,
		},
		{
			name: "same sign",
			a:    transferLeg("50000", "inst-a", base),
			b:    transferLeg("50000", "inst-b", base),
			want: false,
		},
		{
			name: "different absolute amounts",
			a:    transferLeg("-50000", "inst-a", base),
			b:    transferLeg("49999", "inst-b", base),
			want: false,
		},
		{
			name: "same institution",
			a:    transferLeg("-50000", "inst-a", base),
			b:    transferLeg("50000", "inst-a", base),
			want: false,
		},
		{
			name: "zero amounts",
			a:    transferLeg("0", "inst-a", base),
			b:    transferLeg("0", "inst-b", base),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.IsTransferPattern(tt.a, tt.b); got != tt.want {
				t.Errorf("IsTransferPattern = %v, want %v", got, tt.want)
			}
			// symmetric
			if got := svc.IsTransferPattern(tt.b, tt.a); got != tt.want {
				t.Errorf("IsTransferPattern reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsTransferPattern_MissingInstitution(t *testing.T) {
	svc := NewClassifierService()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	a := transferLeg("-50000", "inst-a", base)
	b := &domain.Transaction{Amount: decimal.RequireFromString("50000"), Date: base}

	if svc.IsTransferPattern(a, b) {
		t.Error("Expected false when an institution id is missing")
	}
}
