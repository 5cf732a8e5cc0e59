package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/fatura/internal/bill"
	"github.com/MrJamesThe3rd/fatura/internal/item"
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

const selectItemColumns = `id, bill_id, amount, category, description, purchase_date, installment_number, total_installments, group_id, created_at, updated_at, deleted_at`

func scanItem(s scanner) (*item.Item, error) {
	var it item.Item

	var categoryStr string

	if err := s.Scan(
		&it.ID, &it.BillID, &it.Amount, &categoryStr, &it.Description, &it.PurchaseDate,
		&it.InstallmentNumber, &it.TotalInstallments, &it.GroupID,
		&it.CreatedAt, &it.UpdatedAt, &it.DeletedAt,
	); err != nil {
		return nil, err
	}

	it.Category = item.Category(categoryStr)

	return &it, nil
}

// querier is satisfied by *sql.DB and *sql.Tx; item queries run against
// either the pool or a ledger transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func createItem(ctx context.Context, q querier, it *item.Item) error {
	query := `
		INSERT INTO credit_card_items (bill_id, amount, category, description, purchase_date, installment_number, total_installments, group_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRowContext(ctx, query,
		it.BillID,
		it.Amount,
		it.Category,
		it.Description,
		it.PurchaseDate,
		it.InstallmentNumber,
		it.TotalInstallments,
		it.GroupID,
	).Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating item: %w", err)
	}

	return nil
}

func getItem(ctx context.Context, q querier, id uuid.UUID) (*item.Item, error) {
	query := `SELECT ` + selectItemColumns + `
		FROM credit_card_items
		WHERE id = $1 AND deleted_at IS NULL`

	it, err := scanItem(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, item.ErrNotFound
		}

		return nil, fmt.Errorf("getting item: %w", err)
	}

	return it, nil
}

func listByGroup(ctx context.Context, q querier, groupID uuid.UUID) ([]*item.Item, error) {
	query := `SELECT ` + selectItemColumns + `
		FROM credit_card_items
		WHERE group_id = $1 AND deleted_at IS NULL
		ORDER BY installment_number ASC`

	return listItems(ctx, q, query, groupID)
}

func listItems(ctx context.Context, q querier, query string, args ...any) ([]*item.Item, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []*item.Item

	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}

		items = append(items, it)
	}

	return items, rows.Err()
}

func (s *Store) CreateItem(ctx context.Context, it *item.Item) error {
	return createItem(ctx, s.db, it)
}

func (s *Store) GetItem(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	return getItem(ctx, s.db, id)
}

func (s *Store) UpdateItem(ctx context.Context, it *item.Item) error {
	query := `
		UPDATE credit_card_items
		SET amount = $1, category = $2, description = $3, updated_at = NOW()
		WHERE id = $4 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, it.Amount, it.Category, it.Description, it.ID)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}

	return nil
}

func (s *Store) DeleteItem(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE credit_card_items
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}

	return nil
}

func (s *Store) ListByBill(ctx context.Context, billID uuid.UUID) ([]*item.Item, error) {
	query := `SELECT ` + selectItemColumns + `
		FROM credit_card_items
		WHERE bill_id = $1 AND deleted_at IS NULL
		ORDER BY purchase_date ASC, installment_number ASC`

	return listItems(ctx, s.db, query, billID)
}

func (s *Store) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*item.Item, error) {
	return listByGroup(ctx, s.db, groupID)
}

func (s *Store) SumByBill(ctx context.Context, billID uuid.UUID) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM credit_card_items
		WHERE bill_id = $1 AND deleted_at IS NULL
	`

	var sum int64
	if err := s.db.QueryRowContext(ctx, query, billID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("summing items: %w", err)
	}

	return sum, nil
}

// Begin opens a ledger transaction covering both the items and bills tables.
func (s *Store) Begin(ctx context.Context) (item.LedgerTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning ledger tx: %w", err)
	}

	return &ledgerTx{tx: tx}, nil
}

type ledgerTx struct {
	tx *sql.Tx
}

func (l *ledgerTx) Commit() error   { return l.tx.Commit() }
func (l *ledgerTx) Rollback() error { return l.tx.Rollback() }

func (l *ledgerTx) GetItem(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	return getItem(ctx, l.tx, id)
}

func (l *ledgerTx) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*item.Item, error) {
	return listByGroup(ctx, l.tx, groupID)
}

func (l *ledgerTx) CreateItem(ctx context.Context, it *item.Item) error {
	return createItem(ctx, l.tx, it)
}

func (l *ledgerTx) ReassignItem(ctx context.Context, itemID, billID uuid.UUID) error {
	query := `
		UPDATE credit_card_items
		SET bill_id = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`

	_, err := l.tx.ExecContext(ctx, query, billID, itemID)
	if err != nil {
		return fmt.Errorf("reassigning item: %w", err)
	}

	return nil
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

// GetBill locks the bill row for the duration of the transaction so
// concurrent moves against the same bills serialize.
func (l *ledgerTx) GetBill(ctx context.Context, id uuid.UUID) (*bill.Bill, error) {
	query := `SELECT ` + selectBillColumns + `
		FROM credit_card_bills
		WHERE id = $1
		FOR UPDATE`

	b, err := scanBill(l.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, bill.ErrNotFound
		}

		return nil, fmt.Errorf("getting bill: %w", err)
	}

	return b, nil
}

func (l *ledgerTx) UpsertBill(ctx context.Context, b *bill.Bill) (*bill.Bill, error) {
	query := `
		INSERT INTO credit_card_bills (card_id, month, year, closing_date, due_date, total_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (card_id, month, year) DO UPDATE SET card_id = EXCLUDED.card_id
		RETURNING ` + selectBillColumns

	stored, err := scanBill(l.tx.QueryRowContext(ctx, query,
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

// RecalcBill recomputes the bill's cached total from its items in a single
// statement, inside the transaction.
func (l *ledgerTx) RecalcBill(ctx context.Context, billID uuid.UUID) error {
	query := `
		UPDATE credit_card_bills
		SET total_amount = (
			SELECT COALESCE(SUM(amount), 0)
			FROM credit_card_items
			WHERE bill_id = $1 AND deleted_at IS NULL
		), updated_at = NOW()
		WHERE id = $1
	`

	_, err := l.tx.ExecContext(ctx, query, billID)
	if err != nil {
		return fmt.Errorf("reconciling bill total: %w", err)
	}

	return nil
}
