package service

import (
	"time"

	"github.com/carson-networks/expense-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Identity *IdentityService
	Expense  *ExpenseService
}

// NewService creates a new Service with the given storage and token signing
// parameters.
func NewService(store *storage.Storage, jwtSecret string, tokenLifetime time.Duration) *Service {
	return &Service{
		Identity: NewIdentityService(store, []byte(jwtSecret), tokenLifetime),
		Expense:  NewExpenseService(store),
	}
}
