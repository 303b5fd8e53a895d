package repo

import (
	"fmt"
	"slices"

	"github.com/rogerio-castellano/employee-portal/internal/models"
)

type InMemoryAccountRepository struct {
	accounts []models.Account
}

// NewInMemoryAccountRepository creates a repository holding a private copy of accounts.
// Usernames must be unique.
func NewInMemoryAccountRepository(accounts []models.Account) (*InMemoryAccountRepository, error) {
	seen := make(map[string]struct{}, len(accounts))
	for _, a := range accounts {
		if _, ok := seen[a.Username]; ok {
			return nil, fmt.Errorf("username %q: %w", a.Username, ErrDuplicatedValueUnique)
		}
		seen[a.Username] = struct{}{}
	}

	return &InMemoryAccountRepository{accounts: slices.Clone(accounts)}, nil
}

// FindByCredentials returns the first account whose username and password both
// equal the given values exactly.
func (r *InMemoryAccountRepository) FindByCredentials(username, password string) (models.Account, error) {
	for _, a := range r.accounts {
		if a.Username == username && a.Password == password {
			return a, nil
		}
	}

	return models.Account{}, ErrAccountNotFound
}
