package card

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrInvalidCard = errors.New("invalid card")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=card
type Repository interface {
	CreateCard(ctx context.Context, c *Card) error
	GetCard(ctx context.Context, id uuid.UUID) (*Card, error)
	ListCards(ctx context.Context) ([]*Card, error)
	ListActiveCards(ctx context.Context) ([]*Card, error)
	UpdateCard(ctx context.Context, c *Card) error
	DeleteCard(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name       string
	ClosingDay int
	DueDay     int
	Limit      int64
}

func validDay(d int) bool { return d >= 1 && d <= 31 }

func (s *Service) Create(ctx context.Context, params CreateParams) (*Card, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidCard)
	}

	if !validDay(params.ClosingDay) {
		return nil, fmt.Errorf("%w: closing day must be between 1 and 31", ErrInvalidCard)
	}

	if !validDay(params.DueDay) {
		return nil, fmt.Errorf("%w: due day must be between 1 and 31", ErrInvalidCard)
	}

	if params.Limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", ErrInvalidCard)
	}

	c := &Card{
		Name:       params.Name,
		ClosingDay: params.ClosingDay,
		DueDay:     params.DueDay,
		Limit:      params.Limit,
		Active:     true,
	}
	if err := s.repo.CreateCard(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Card, error) {
	return s.repo.GetCard(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Card, error) {
	return s.repo.ListCards(ctx)
}

func (s *Service) ListActive(ctx context.Context) ([]*Card, error) {
	return s.repo.ListActiveCards(ctx)
}

type UpdateParams struct {
	Name       *string
	ClosingDay *int
	DueDay     *int
	Limit      *int64
	Active     *bool
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Card, error) {
	c, err := s.repo.GetCard(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		c.Name = *params.Name
	}

	if params.ClosingDay != nil {
		if !validDay(*params.ClosingDay) {
			return nil, fmt.Errorf("%w: closing day must be between 1 and 31", ErrInvalidCard)
		}

		c.ClosingDay = *params.ClosingDay
	}

	if params.DueDay != nil {
		if !validDay(*params.DueDay) {
			return nil, fmt.Errorf("%w: due day must be between 1 and 31", ErrInvalidCard)
		}

		c.DueDay = *params.DueDay
	}

	if params.Limit != nil {
		if *params.Limit <= 0 {
			return nil, fmt.Errorf("%w: limit must be positive", ErrInvalidCard)
		}

		c.Limit = *params.Limit
	}

	if params.Active != nil {
		c.Active = *params.Active
	}

	if err := s.repo.UpdateCard(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCard(ctx, id)
}
