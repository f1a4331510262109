package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Expense represents an expense record.
type Expense struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Category    string          `db:"category"`
	ExpenseDate time.Time       `db:"expense_date"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

// ExpenseCreate is the input for creating a new expense.
type ExpenseCreate struct {
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Category    string
	ExpenseDate time.Time
}

// ExpenseUpdate carries the columns to change. Unset fields are left
// untouched, which is what distinguishes a partial update from an overwrite.
type ExpenseUpdate struct {
	Description omit.Val[string]
	Amount      omit.Val[decimal.Decimal]
	Category    omit.Val[string]
	ExpenseDate omit.Val[time.Time]
}

// IsEmpty reports whether the update would change no columns.
func (u *ExpenseUpdate) IsEmpty() bool {
	return !u.Description.IsValue() && !u.Amount.IsValue() &&
		!u.Category.IsValue() && !u.ExpenseDate.IsValue()
}

// ExpenseFilter specifies optional filters for listing expenses.
// Date bounds are inclusive and applied independently.
type ExpenseFilter struct {
	Category  *string
	StartDate *time.Time
	EndDate   *time.Time
}

// IExpenseTable defines the interface for expense storage operations.
// Every operation is scoped to the owning user; a record owned by someone
// else is indistinguishable from a missing one (ErrRecordNotFound).
type IExpenseTable interface {
	Insert(ctx context.Context, create *ExpenseCreate) (*Expense, error)
	FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Expense, error)
	List(ctx context.Context, userID uuid.UUID, filter *ExpenseFilter) ([]*Expense, error)
	Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, update *ExpenseUpdate) (*Expense, error)
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Expense, error)
}
