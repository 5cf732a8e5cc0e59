package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/fatura/internal/card"
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

const selectCardColumns = `id, name, closing_day, due_day, credit_limit, active, created_at, updated_at`

func scanCard(s scanner) (*card.Card, error) {
	var c card.Card

	if err := s.Scan(
		&c.ID, &c.Name, &c.ClosingDay, &c.DueDay, &c.Limit, &c.Active,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Store) CreateCard(ctx context.Context, c *card.Card) error {
	query := `
		INSERT INTO credit_cards (name, closing_day, due_day, credit_limit, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.Name,
		c.ClosingDay,
		c.DueDay,
		c.Limit,
		c.Active,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating card: %w", err)
	}

	return nil
}

func (s *Store) GetCard(ctx context.Context, id uuid.UUID) (*card.Card, error) {
	query := `SELECT ` + selectCardColumns + ` FROM credit_cards WHERE id = $1`

	c, err := scanCard(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, card.ErrNotFound
		}

		return nil, fmt.Errorf("getting card: %w", err)
	}

	return c, nil
}

func (s *Store) ListCards(ctx context.Context) ([]*card.Card, error) {
	return s.list(ctx, `SELECT `+selectCardColumns+` FROM credit_cards ORDER BY name ASC`)
}

func (s *Store) ListActiveCards(ctx context.Context) ([]*card.Card, error) {
	return s.list(ctx, `SELECT `+selectCardColumns+` FROM credit_cards WHERE active ORDER BY name ASC`)
}

func (s *Store) list(ctx context.Context, query string) ([]*card.Card, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}
	defer rows.Close()

	var cards []*card.Card

	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning card: %w", err)
		}

		cards = append(cards, c)
	}

	return cards, rows.Err()
}

func (s *Store) UpdateCard(ctx context.Context, c *card.Card) error {
	query := `
		UPDATE credit_cards
		SET name = $1, closing_day = $2, due_day = $3, credit_limit = $4, active = $5, updated_at = NOW()
		WHERE id = $6
	`

	_, err := s.db.ExecContext(ctx, query,
		c.Name,
		c.ClosingDay,
		c.DueDay,
		c.Limit,
		c.Active,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating card: %w", err)
	}

	return nil
}

// DeleteCard removes the card. Bills and items cascade at the schema level.
func (s *Store) DeleteCard(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM credit_cards WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting card: %w", err)
	}

	return nil
}
