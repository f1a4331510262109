package service

import (
	"context"
	"errors"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// ExpenseService performs validated CRUD on expense records. Every operation
// is scoped to the owning account: a record owned by someone else is
// reported exactly like a missing one.
type ExpenseService struct {
	storage *storage.Storage
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(store *storage.Storage) *ExpenseService {
	return &ExpenseService{storage: store}
}

// Create validates the fields and persists a new expense owned by ownerID.
func (s *ExpenseService) Create(ctx context.Context, ownerID uuid.UUID, create ExpenseCreate) (*Expense, error) {
	category, err := ParseCategory(create.Category)
	if err != nil {
		return nil, err
	}

	if !create.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	date, err := parseExpenseDate(create.Date)
	if err != nil {
		return nil, err
	}

	row, err := s.storage.Expenses.Insert(ctx, &sqlconfig.ExpenseCreate{
		UserID:      ownerID,
		Description: create.Description,
		Amount:      create.Amount,
		Category:    string(category),
		ExpenseDate: date,
	})
	if err != nil {
		logrus.WithError(err).Error("ExpenseService.Create.insert")
		return nil, ErrInternal
	}

	return expenseFromStorage(row), nil
}

// List returns all of the owner's expenses matching the optional filters,
// ordered by date descending. Both date bounds are inclusive and applied
// independently.
func (s *ExpenseService) List(ctx context.Context, ownerID uuid.UUID, query ExpenseQuery) ([]*Expense, error) {
	filter := &sqlconfig.ExpenseFilter{}

	if query.Category != "" {
		category, err := ParseCategory(query.Category)
		if err != nil {
			return nil, err
		}
		value := string(category)
		filter.Category = &value
	}

	if query.StartDate != "" {
		start, err := parseExpenseDate(query.StartDate)
		if err != nil {
			return nil, err
		}
		filter.StartDate = &start
	}

	if query.EndDate != "" {
		end, err := parseExpenseDate(query.EndDate)
		if err != nil {
			return nil, err
		}
		filter.EndDate = &end
	}

	rows, err := s.storage.Expenses.List(ctx, ownerID, filter)
	if err != nil {
		logrus.WithError(err).Error("ExpenseService.List.list")
		return nil, ErrInternal
	}

	result := make([]*Expense, len(rows))
	for i, row := range rows {
		result[i] = expenseFromStorage(row)
	}
	return result, nil
}

// Get retrieves one of the owner's expenses by id.
func (s *ExpenseService) Get(ctx context.Context, ownerID uuid.UUID, expenseID uuid.UUID) (*Expense, error) {
	row, err := s.storage.Expenses.FindByID(ctx, expenseID, ownerID)
	if err != nil {
		return nil, s.notFoundOrInternal(err, "ExpenseService.Get.findByID")
	}
	return expenseFromStorage(row), nil
}

// Update applies a partial update to one of the owner's expenses and returns
// the full updated record. Supplied fields are validated in order: amount,
// category, date.
func (s *ExpenseService) Update(ctx context.Context, ownerID uuid.UUID, expenseID uuid.UUID, update ExpenseUpdate) (*Expense, error) {
	storageUpdate := &sqlconfig.ExpenseUpdate{
		Description: update.Description,
	}

	if update.Amount.IsValue() {
		amount := update.Amount.MustGet()
		if !amount.IsPositive() {
			return nil, ErrInvalidAmount
		}
		storageUpdate.Amount = update.Amount
	}

	if update.Category.IsValue() {
		category, err := ParseCategory(update.Category.MustGet())
		if err != nil {
			return nil, err
		}
		storageUpdate.Category = omit.From(string(category))
	}

	if update.Date.IsValue() {
		date, err := parseExpenseDate(update.Date.MustGet())
		if err != nil {
			return nil, err
		}
		storageUpdate.ExpenseDate = omit.From(date)
	}

	if storageUpdate.IsEmpty() {
		// Nothing to change: behave like a read so the ownership and
		// not-found semantics stay identical.
		return s.Get(ctx, ownerID, expenseID)
	}

	row, err := s.storage.Expenses.Update(ctx, expenseID, ownerID, storageUpdate)
	if err != nil {
		return nil, s.notFoundOrInternal(err, "ExpenseService.Update.update")
	}
	return expenseFromStorage(row), nil
}

// Remove deletes one of the owner's expenses and returns its last state.
func (s *ExpenseService) Remove(ctx context.Context, ownerID uuid.UUID, expenseID uuid.UUID) (*Expense, error) {
	row, err := s.storage.Expenses.Delete(ctx, expenseID, ownerID)
	if err != nil {
		// A record deleted concurrently between resolve and mutate is the
		// same outcome for the caller: it is gone.
		return nil, s.notFoundOrInternal(err, "ExpenseService.Remove.delete")
	}
	return expenseFromStorage(row), nil
}

func (s *ExpenseService) notFoundOrInternal(err error, logName string) error {
	if errors.Is(err, sqlconfig.ErrRecordNotFound) {
		return ErrNotFound
	}
	logrus.WithError(err).Error(logName)
	return ErrInternal
}
