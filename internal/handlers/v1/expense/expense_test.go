package expense

import (
	"context"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/handlers/v1/identity"
	"github.com/carson-networks/expense-server/internal/service"
)

const testAuthHeader = "Authorization: Bearer good-token"

// mockExpenseService is a mock for the per-handler expense service
// interfaces.
type mockExpenseService struct {
	mock.Mock
}

func (m *mockExpenseService) Create(ctx context.Context, ownerID uuid.UUID, create service.ExpenseCreate) (*service.Expense, error) {
	args := m.Called(ctx, ownerID, create)
	expense, _ := args.Get(0).(*service.Expense)
	return expense, args.Error(1)
}

func (m *mockExpenseService) List(ctx context.Context, ownerID uuid.UUID, query service.ExpenseQuery) ([]*service.Expense, error) {
	args := m.Called(ctx, ownerID, query)
	expenses, _ := args.Get(0).([]*service.Expense)
	return expenses, args.Error(1)
}

func (m *mockExpenseService) Get(ctx context.Context, ownerID uuid.UUID, expenseID uuid.UUID) (*service.Expense, error) {
	args := m.Called(ctx, ownerID, expenseID)
	expense, _ := args.Get(0).(*service.Expense)
	return expense, args.Error(1)
}

func (m *mockExpenseService) Update(ctx context.Context, ownerID uuid.UUID, expenseID uuid.UUID, update service.ExpenseUpdate) (*service.Expense, error) {
	args := m.Called(ctx, ownerID, expenseID, update)
	expense, _ := args.Get(0).(*service.Expense)
	return expense, args.Error(1)
}

func (m *mockExpenseService) Remove(ctx context.Context, ownerID uuid.UUID, expenseID uuid.UUID) (*service.Expense, error) {
	args := m.Called(ctx, ownerID, expenseID)
	expense, _ := args.Get(0).(*service.Expense)
	return expense, args.Error(1)
}

// stubVerifier accepts exactly the "Bearer good-token" header and resolves it
// to the configured identity. Anything else fails verification, which is how
// the real service behaves.
type stubVerifier struct {
	identity *service.Identity
}

func (s *stubVerifier) VerifyToken(_ context.Context, authorization string) (*service.Identity, error) {
	if s.identity == nil || authorization != "Bearer good-token" {
		return nil, service.ErrAuthenticationFailed
	}
	return s.identity, nil
}

// newTestAPI registers every expense handler behind the stub authenticator
// and returns the caller identity the good token resolves to.
func newTestAPI(t *testing.T, svc *mockExpenseService) (humatest.TestAPI, *service.Identity) {
	t.Helper()
	caller := &service.Identity{
		ID:    uuid.Must(uuid.NewV4()),
		Email: "alice@example.com",
	}
	auth := identity.NewAuthenticator(&stubVerifier{identity: caller})

	_, api := humatest.New(t)
	NewCreateExpenseHandler(svc, auth).Register(api)
	NewListExpensesHandler(svc, auth).Register(api)
	NewGetExpenseHandler(svc, auth).Register(api)
	NewUpdateExpenseHandler(svc, auth).Register(api)
	NewDeleteExpenseHandler(svc, auth).Register(api)
	return api, caller
}

func sampleExpense(ownerID uuid.UUID) *service.Expense {
	return &service.Expense{
		ID:          uuid.Must(uuid.NewV4()),
		OwnerID:     ownerID,
		Description: "Weekly groceries",
		Amount:      decimal.RequireFromString("42.50"),
		Category:    service.CategoryFood,
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
	}
}
