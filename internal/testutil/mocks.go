package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/kakeibo-dev/kakeibo-core/internal/domain"
	"github.com/shopspring/decimal"
)

// MockCategoryRepository is a mock implementation of domain.CategoryRepository
type MockCategoryRepository struct {
	Categories []*domain.Category
	Err        error // returned by every method when set
}

// NewMockCategoryRepository creates a new MockCategoryRepository
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{Categories: make([]*domain.Category, 0)}
}

// AddCategory adds a category to the mock repository (helper for tests)
func (m *MockCategoryRepository) AddCategory(category *domain.Category) {
	m.Categories = append(m.Categories, category)
}

// FindAll returns all categories
func (m *MockCategoryRepository) FindAll() ([]*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]*domain.Category(nil), m.Categories...), nil
}

// FindByType returns the categories of one type
func (m *MockCategoryRepository) FindByType(t domain.CategoryType) ([]*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	matched := make([]*domain.Category, 0)
	for _, c := range m.Categories {
		if c.Type == t {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// FindByParentID returns the direct children of a category
func (m *MockCategoryRepository) FindByParentID(parentID string) ([]*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	matched := make([]*domain.Category, 0)
	for _, c := range m.Categories {
		if c.ParentID != nil && *c.ParentID == parentID {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// MockTransactionRepository is a mock implementation of domain.TransactionRepository
type MockTransactionRepository struct {
	Transactions []*domain.Transaction
	Err          error // returned by every method when set
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{Transactions: make([]*domain.Transaction, 0)}
}

// AddTransaction adds a transaction to the mock repository (helper for tests)
func (m *MockTransactionRepository) AddTransaction(tx *domain.Transaction) {
	m.Transactions = append(m.Transactions, tx)
}

// FindAll returns all transactions
func (m *MockTransactionRepository) FindAll() ([]*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]*domain.Transaction(nil), m.Transactions...), nil
}

// FindByDateRange returns the transactions dated within [start, end]
func (m *MockTransactionRepository) FindByDateRange(start, end time.Time) ([]*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	matched := make([]*domain.Transaction, 0)
	for _, tx := range m.Transactions {
		if !tx.Date.Before(start) && !tx.Date.After(end) {
			matched = append(matched, tx)
		}
	}
	return matched, nil
}

// FindByCategoryType returns the transactions of one category type
func (m *MockTransactionRepository) FindByCategoryType(t domain.CategoryType) ([]*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	matched := make([]*domain.Transaction, 0)
	for _, tx := range m.Transactions {
		if tx.Category.Type == t {
			matched = append(matched, tx)
		}
	}
	return matched, nil
}

// NewTransaction builds a transaction fixture with a fresh id.
func NewTransaction(date time.Time, amount string, category domain.CategoryRef, description string) *domain.Transaction {
	return &domain.Transaction{
		ID:          uuid.NewString(),
		Date:        date,
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Description: description,
	}
}

// NewCategory builds a category fixture with a fresh id.
func NewCategory(name string, t domain.CategoryType, parentID *string, order int) *domain.Category {
	return &domain.Category{
		ID:       uuid.NewString(),
		Name:     name,
		Type:     t,
		ParentID: parentID,
		Order:    order,
	}
}
