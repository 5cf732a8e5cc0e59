package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/fatura/internal/bill"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectBillColumns = `id, card_id, month, year, closing_date, due_date, total_amount, status, paid_at, created_at, updated_at`

func scanBill(s scanner) (*bill.Bill, error) {
	var b bill.Bill

	var statusStr string

	if err := s.Scan(
		&b.ID, &b.CardID, &b.Month, &b.Year, &b.ClosingDate, &b.DueDate,
		&b.TotalAmount, &statusStr, &b.PaidAt, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	b.Status = bill.Status(statusStr)

	return &b, nil
}

func (s *Store) GetBill(ctx context.Context, id uuid.UUID) (*bill.Bill, error) {
	query := `SELECT ` + selectBillColumns + ` FROM credit_card_bills WHERE id = $1`

	b, err := scanBill(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, bill.ErrNotFound
		}

		return nil, fmt.Errorf("getting bill: %w", err)
	}

	return b, nil
}

func (s *Store) GetByCardAndMonth(ctx context.Context, cardID uuid.UUID, m, year int) (*bill.Bill, error) {
	query := `SELECT ` + selectBillColumns + `
		FROM credit_card_bills
		WHERE card_id = $1 AND month = $2 AND year = $3`

	b, err := scanBill(s.db.QueryRowContext(ctx, query, cardID, m, year))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, bill.ErrNotFound
		}

		return nil, fmt.Errorf("getting bill by month: %w", err)
	}

	return b, nil
}

// UpsertBill inserts the bill or, when the (card_id, month, year) row already
// exists, returns that row untouched. The conflict clause makes concurrent
// resolvers of the same statement month converge on a single bill.
func (s *Store) UpsertBill(ctx context.Context, b *bill.Bill) (*bill.Bill, error) {
	query := `
		INSERT INTO credit_card_bills (card_id, month, year, closing_date, due_date, total_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (card_id, month, year) DO UPDATE SET card_id = EXCLUDED.card_id
		RETURNING ` + selectBillColumns

	stored, err := scanBill(s.db.QueryRowContext(ctx, query,
		b.CardID,
		b.Month,
		b.Year,
		b.ClosingDate,
		b.DueDate,
		b.TotalAmount,
		b.Status,
	))
	if err != nil {
		return nil, fmt.Errorf("upserting bill: %w", err)
	}

	return stored, nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status bill.Status, paidAt *time.Time) error {
	query := `
		UPDATE credit_card_bills
		SET status = $1, paid_at = $2, updated_at = NOW()
		WHERE id = $3
	`

	_, err := s.db.ExecContext(ctx, query, status, paidAt, id)
	if err != nil {
		return fmt.Errorf("updating bill status: %w", err)
	}

	return nil
}

func (s *Store) UpdateTotal(ctx context.Context, id uuid.UUID, amount int64) error {
	query := `
		UPDATE credit_card_bills
		SET total_amount = $1, updated_at = NOW()
		WHERE id = $2
	`

	_, err := s.db.ExecContext(ctx, query, amount, id)
	if err != nil {
		return fmt.Errorf("updating bill total: %w", err)
	}

	return nil
}

func (s *Store) ListByCard(ctx context.Context, cardID uuid.UUID) ([]*bill.Bill, error) {
	query := `SELECT ` + selectBillColumns + `
		FROM credit_card_bills
		WHERE card_id = $1
		ORDER BY year ASC, month ASC`

	return s.list(ctx, query, cardID)
}

func (s *Store) ListOpenByCard(ctx context.Context, cardID uuid.UUID) ([]*bill.Bill, error) {
	query := `SELECT ` + selectBillColumns + `
		FROM credit_card_bills
		WHERE card_id = $1 AND status = 'open'
		ORDER BY year ASC, month ASC`

	return s.list(ctx, query, cardID)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]*bill.Bill, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing bills: %w", err)
	}
	defer rows.Close()

	var bills []*bill.Bill

	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning bill: %w", err)
		}

		bills = append(bills, b)
	}

	return bills, rows.Err()
}
