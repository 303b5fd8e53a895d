package repo

import "github.com/rogerio-castellano/employee-portal/internal/models"

// SeedAccounts returns the demo login accounts. Each call returns a new slice.
func SeedAccounts() []models.Account {
	return []models.Account{
		{Username: "test", Password: "123456", Name: "測試員工"},
		{Username: "admin", Password: "admin123", Name: "系統管理員"},
	}
}

// SeedProducts returns the demo product catalog. Each call returns a new slice.
func SeedProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "筆記本電腦", Price: 25000, Stock: 50},
		{ID: 2, Name: "辦公椅", Price: 3500, Stock: 20},
	}
}

// NewSeededRepositories builds the account and product repositories from the
// built-in seed data.
func NewSeededRepositories() (*InMemoryAccountRepository, *InMemoryProductRepository, error) {
	accounts, err := NewInMemoryAccountRepository(SeedAccounts())
	if err != nil {
		return nil, nil, err
	}

	products, err := NewInMemoryProductRepository(SeedProducts())
	if err != nil {
		return nil, nil, err
	}

	return accounts, products, nil
}
