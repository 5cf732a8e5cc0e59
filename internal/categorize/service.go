// Package categorize maps raw purchase descriptions to item categories so
// imported or hand-entered purchases can be auto-classified.
package categorize

import (
	"context"
	"fmt"

	"github.com/MrJamesThe3rd/fatura/internal/item"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=categorize
type Repository interface {
	FindCategory(ctx context.Context, description string) (item.Category, error)
	CreateMapping(ctx context.Context, pattern string, category item.Category) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest tries to find a category for the given purchase description.
// Returns empty category if no pattern matches.
func (s *Service) Suggest(ctx context.Context, description string) (item.Category, error) {
	return s.repo.FindCategory(ctx, description)
}

// Learn remembers a new mapping between a description pattern and a category.
func (s *Service) Learn(ctx context.Context, pattern string, category item.Category) error {
	if !category.IsValid() {
		return fmt.Errorf("%w: unknown category %q", item.ErrInvalidArgument, category)
	}

	return s.repo.CreateMapping(ctx, pattern, category)
}
