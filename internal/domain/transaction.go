package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstitutionType identifies the kind of financial institution a transaction
// was imported from.
type InstitutionType string

const (
	InstitutionTypeBank       InstitutionType = "bank"
	InstitutionTypeSecurities InstitutionType = "securities"
	InstitutionTypeCard       InstitutionType = "card"
)

// CategoryRef is the minimal category projection carried on a transaction.
// It is intentionally not the full Category entity: reporting only needs
// identity, name, and type.
type CategoryRef struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Type CategoryType `json:"type"`
}

// Transaction is the reporting projection of an imported transaction.
// Amount is signed: deposits are positive, withdrawals negative. The sign is
// a classification hint only, never authoritative.
type Transaction struct {
	ID              string           `json:"id"`
	Date            time.Time        `json:"date"`
	Amount          decimal.Decimal  `json:"amount"`
	Category        CategoryRef      `json:"category"`
	Description     string           `json:"description"`
	InstitutionID   *string          `json:"institutionId,omitempty"`
	InstitutionType *InstitutionType `json:"institutionType,omitempty"`
}

type TransactionRepository interface {
	FindAll() ([]*Transaction, error)
	FindByDateRange(start, end time.Time) ([]*Transaction, error)
	FindByCategoryType(t CategoryType) ([]*Transaction, error)
}
