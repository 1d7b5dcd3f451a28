package cart

import (
	"context"
	"errors"
)

// Service orchestrates cart operations.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(ctx context.Context, buyerID int, item Item) ([]Item, error) {
	if buyerID <= 0 {
		return nil, errors.New("invalid buyer")
	}
	if item.ProductID <= 0 || item.Name == "" {
		return nil, errors.New("productId and name are required")
	}
	return s.repo.Append(ctx, buyerID, item)
}

func (s *Service) Remove(ctx context.Context, buyerID int, index int) ([]Item, error) {
	if buyerID <= 0 {
		return nil, errors.New("invalid buyer")
	}
	return s.repo.RemoveAt(ctx, buyerID, index)
}

func (s *Service) List(ctx context.Context, buyerID int) ([]Item, error) {
	if buyerID <= 0 {
		return nil, errors.New("invalid buyer")
	}
	return s.repo.List(ctx, buyerID)
}

// Clear empties a buyer's cart, used on explicit clear and after a fully
// successful checkout.
func (s *Service) Clear(ctx context.Context, buyerID int) error {
	if buyerID <= 0 {
		return errors.New("invalid buyer")
	}
	return s.repo.Clear(ctx, buyerID)
}
