package domain

// CategoryType is the closed set of transaction classifications.
type CategoryType string

const (
	CategoryTypeIncome     CategoryType = "income"
	CategoryTypeExpense    CategoryType = "expense"
	CategoryTypeTransfer   CategoryType = "transfer"
	CategoryTypeRepayment  CategoryType = "repayment"
	CategoryTypeInvestment CategoryType = "investment"
)

// CategoryTypes lists all valid category types in display order.
var CategoryTypes = []CategoryType{
	CategoryTypeIncome,
	CategoryTypeExpense,
	CategoryTypeTransfer,
	CategoryTypeRepayment,
	CategoryTypeInvestment,
}

// ParseCategoryType validates a raw string against the closed enumeration.
func ParseCategoryType(s string) (CategoryType, error) {
	switch CategoryType(s) {
	case CategoryTypeIncome, CategoryTypeExpense, CategoryTypeTransfer,
		CategoryTypeRepayment, CategoryTypeInvestment:
		return CategoryType(s), nil
	}
	return "", ErrInvalidCategoryType
}

// IsValid reports whether t is one of the five known category types.
func (t CategoryType) IsValid() bool {
	_, err := ParseCategoryType(string(t))
	return err == nil
}

// DefaultCategoryName returns the display name used when seeding the default
// top-level category for a type. Unknown types return an empty string.
func DefaultCategoryName(t CategoryType) string {
	switch t {
	case CategoryTypeIncome:
		return "収入"
	case CategoryTypeExpense:
		return "支出"
	case CategoryTypeTransfer:
		return "振替"
	case CategoryTypeRepayment:
		return "返済"
	case CategoryTypeInvestment:
		return "投資"
	}
	return ""
}

// Category is a user-defined classification bucket. ParentID of nil means a
// top-level category; a non-nil ParentID must reference a category of the same
// type (enforced upstream at create/update time).
type Category struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Type     CategoryType `json:"type"`
	ParentID *string      `json:"parentId,omitempty"`
	Order    int          `json:"order"`
}

// CategoryNode is one node of the two-level display tree built from the flat
// category list.
type CategoryNode struct {
	Category *Category       `json:"category"`
	Children []*CategoryNode `json:"children"`
}

type CategoryRepository interface {
	FindAll() ([]*Category, error)
	FindByType(t CategoryType) ([]*Category, error)
	FindByParentID(parentID string) ([]*Category, error)
}
