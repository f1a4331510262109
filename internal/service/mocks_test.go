package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

type mockUserTable struct {
	mock.Mock
}

func (m *mockUserTable) Insert(ctx context.Context, create *sqlconfig.UserCreate) (*sqlconfig.User, error) {
	args := m.Called(ctx, create)
	user, _ := args.Get(0).(*sqlconfig.User)
	return user, args.Error(1)
}

func (m *mockUserTable) FindByEmail(ctx context.Context, email string) (*sqlconfig.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*sqlconfig.User)
	return user, args.Error(1)
}

func (m *mockUserTable) FindByID(ctx context.Context, id uuid.UUID) (*sqlconfig.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*sqlconfig.User)
	return user, args.Error(1)
}

type mockExpenseTable struct {
	mock.Mock
}

func (m *mockExpenseTable) Insert(ctx context.Context, create *sqlconfig.ExpenseCreate) (*sqlconfig.Expense, error) {
	args := m.Called(ctx, create)
	row, _ := args.Get(0).(*sqlconfig.Expense)
	return row, args.Error(1)
}

func (m *mockExpenseTable) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*sqlconfig.Expense, error) {
	args := m.Called(ctx, id, userID)
	row, _ := args.Get(0).(*sqlconfig.Expense)
	return row, args.Error(1)
}

func (m *mockExpenseTable) List(ctx context.Context, userID uuid.UUID, filter *sqlconfig.ExpenseFilter) ([]*sqlconfig.Expense, error) {
	args := m.Called(ctx, userID, filter)
	rows, _ := args.Get(0).([]*sqlconfig.Expense)
	return rows, args.Error(1)
}

func (m *mockExpenseTable) Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, update *sqlconfig.ExpenseUpdate) (*sqlconfig.Expense, error) {
	args := m.Called(ctx, id, userID, update)
	row, _ := args.Get(0).(*sqlconfig.Expense)
	return row, args.Error(1)
}

func (m *mockExpenseTable) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*sqlconfig.Expense, error) {
	args := m.Called(ctx, id, userID)
	row, _ := args.Get(0).(*sqlconfig.Expense)
	return row, args.Error(1)
}
