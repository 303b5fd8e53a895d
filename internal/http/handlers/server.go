package handlers

import (
	"time"

	"github.com/rogerio-castellano/employee-portal/internal/repo"
	"go.uber.org/zap"
)

// Handlers serves the portal routes. Its repositories are read-only seed stores,
// so a single value is safe to share across concurrent requests.
type Handlers struct {
	accountRepo repo.AccountRepository
	productRepo repo.ProductRepository
	version     string
	logger      *zap.Logger
	now         func() time.Time
}

func NewHandlers(accounts repo.AccountRepository, products repo.ProductRepository, version string, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handlers{
		accountRepo: accounts,
		productRepo: products,
		version:     version,
		logger:      logger,
		now:         time.Now,
	}
}

// SetClock replaces the time source used for timestamps and page rendering.
func (h *Handlers) SetClock(now func() time.Time) {
	h.now = now
}
