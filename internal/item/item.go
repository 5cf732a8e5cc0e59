// Package item implements purchase line items: single purchases, multi-month
// installment purchases fanned out across consecutive bills, and the atomic
// relocation of items (or whole installment groups) between bills.
package item

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("item not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrTargetNotOpen   = errors.New("target bill is not open")
)

// Category classifies a purchase.
type Category string

const (
	CategoryFood      Category = "food"
	CategoryTransport Category = "transport"
	CategoryHealth    Category = "health"
	CategoryLeisure   Category = "leisure"
	CategoryEducation Category = "education"
	CategoryShopping  Category = "shopping"
	CategoryServices  Category = "services"
	CategoryOther     Category = "other"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryHealth, CategoryLeisure,
		CategoryEducation, CategoryShopping, CategoryServices, CategoryOther:
		return true
	}

	return false
}

// Item is one purchase line on a bill. Items belonging to an installment
// purchase share a GroupID and carry the per-installment amount, not the
// original purchase total.
type Item struct {
	ID                uuid.UUID
	BillID            uuid.UUID
	Amount            int64 // cents, per installment
	Category          Category
	Description       string
	PurchaseDate      time.Time
	InstallmentNumber int // 1-based
	TotalInstallments int
	GroupID           *uuid.UUID // set iff TotalInstallments > 1
	CreatedAt         time.Time
	UpdatedAt         *time.Time
	DeletedAt         *time.Time
}
