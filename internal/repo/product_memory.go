package repo

import (
	"fmt"
	"slices"

	"github.com/rogerio-castellano/employee-portal/internal/models"
)

// InMemoryProductRepository is a read-only, in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	products []models.Product
}

// NewInMemoryProductRepository creates a repository holding a private copy of products.
// Product IDs must be unique.
func NewInMemoryProductRepository(products []models.Product) (*InMemoryProductRepository, error) {
	seen := make(map[int]struct{}, len(products))
	for _, p := range products {
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("product id %d: %w", p.ID, ErrDuplicatedValueUnique)
		}
		seen[p.ID] = struct{}{}
	}

	return &InMemoryProductRepository{products: slices.Clone(products)}, nil
}

// GetAll returns every product in insertion order. The returned slice is a copy.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	if r.products == nil {
		return []models.Product{}, nil
	}
	return slices.Clone(r.products), nil
}
