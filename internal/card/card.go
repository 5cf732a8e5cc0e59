package card

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("card not found")

// Card represents a credit card and its billing-cycle configuration.
// ClosingDay and DueDay drive bill date derivation and are immutable
// during a billing cycle from the ledger's point of view.
type Card struct {
	ID         uuid.UUID
	Name       string
	ClosingDay int   // day of month the statement closes, 1-31
	DueDay     int   // day of month payment is due, 1-31
	Limit      int64 // credit limit in cents
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
