package domain

import (
	"errors"
	"testing"
)

func TestParseCategoryType(t *testing.T) {
	tests := []struct {
		input   string
		want    CategoryType
		wantErr bool
	}{
		{"income", CategoryTypeIncome, false},
		{"expense", CategoryTypeExpense, false},
		{"transfer", CategoryTypeTransfer, false},
		{"repayment", CategoryTypeRepayment, false},
		{"investment", CategoryTypeInvestment, false},
		{"food", "", true},
		{"", "", true},
		{"Income", "", true}, // enum values are lowercase only
	}

	for _, tt := range tests {
		got, err := ParseCategoryType(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidCategoryType) {
				t.Errorf("ParseCategoryType(%q) error = %v, want ErrInvalidCategoryType", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCategoryType(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategoryType(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCategoryTypesIsClosedSet(t *testing.T) {
	if len(CategoryTypes) != 5 {
		t.Fatalf("Expected 5 category types, got %d", len(CategoryTypes))
	}
	for _, ct := range CategoryTypes {
		if !ct.IsValid() {
			t.Errorf("CategoryType %q should be valid", ct)
		}
	}
}

func TestDefaultCategoryName(t *testing.T) {
	tests := []struct {
		categoryType CategoryType
		want         string
	}{
		{CategoryTypeIncome, "収入"},
		{CategoryTypeExpense, "支出"},
		{CategoryTypeTransfer, "振替"},
		{CategoryTypeRepayment, "返済"},
		{CategoryTypeInvestment, "投資"},
		{CategoryType("food"), ""},
	}

	for _, tt := range tests {
		if got := DefaultCategoryName(tt.categoryType); got != tt.want {
			t.Errorf("DefaultCategoryName(%q) = %q, want %q", tt.categoryType, got, tt.want)
		}
	}
}
