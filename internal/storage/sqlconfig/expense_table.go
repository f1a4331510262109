package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var expenseColumns = []any{
	"id", "user_id", "description", "amount", "category",
	"expense_date", "created_at", "updated_at",
}

var _ IExpenseTable = (*ExpensesTable)(nil)

// ExpensesTable provides access to the expenses table.
type ExpensesTable struct {
	exec bob.Executor
}

// NewExpensesTable creates an ExpensesTable for the given database.
func NewExpensesTable(db *sql.DB) *ExpensesTable {
	return &ExpensesTable{exec: bob.NewDB(db)}
}

// Insert creates a new expense and returns the stored record with its
// generated id and timestamps.
func (t *ExpensesTable) Insert(ctx context.Context, create *ExpenseCreate) (*Expense, error) {
	query := psql.Insert(
		im.Into("expenses", "user_id", "description", "amount", "category", "expense_date"),
		im.Values(
			psql.Arg(create.UserID),
			psql.Arg(create.Description),
			psql.Arg(create.Amount),
			psql.Arg(create.Category),
			psql.Arg(create.ExpenseDate),
		),
		im.Returning(expenseColumns...),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Expense]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

// FindByID retrieves an expense by primary key, scoped to the owning user.
func (t *ExpensesTable) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Expense, error) {
	query := psql.Select(
		sm.Columns(expenseColumns...),
		sm.From("expenses"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Expense]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

// List returns the user's expenses matching the filter, newest expense date
// first. Nil filter returns all of the user's expenses.
func (t *ExpensesTable) List(ctx context.Context, userID uuid.UUID, filter *ExpenseFilter) ([]*Expense, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(expenseColumns...),
		sm.From("expenses"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	}

	if filter != nil {
		if filter.Category != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("category").EQ(psql.Arg(*filter.Category))))
		}
		if filter.StartDate != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("expense_date").GTE(psql.Arg(*filter.StartDate))))
		}
		if filter.EndDate != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("expense_date").LTE(psql.Arg(*filter.EndDate))))
		}
	}

	queryMods = append(queryMods,
		sm.OrderBy("expense_date").Desc(),
		sm.OrderBy("id").Desc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Expense]())
	if err != nil {
		return nil, translateError(err)
	}

	result := make([]*Expense, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Update changes the supplied columns of the user's expense and returns the
// full updated record. A row that is gone by the time the update runs, or
// that belongs to another user, surfaces as ErrRecordNotFound.
func (t *ExpensesTable) Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, update *ExpenseUpdate) (*Expense, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("expenses"),
	}

	if update.Description.IsValue() {
		queryMods = append(queryMods, um.SetCol("description").ToArg(update.Description.MustGet()))
	}
	if update.Amount.IsValue() {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(update.Amount.MustGet()))
	}
	if update.Category.IsValue() {
		queryMods = append(queryMods, um.SetCol("category").ToArg(update.Category.MustGet()))
	}
	if update.ExpenseDate.IsValue() {
		queryMods = append(queryMods, um.SetCol("expense_date").ToArg(update.ExpenseDate.MustGet()))
	}

	queryMods = append(queryMods,
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Returning(expenseColumns...),
	)

	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[Expense]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

// Delete removes the user's expense and returns its last state.
func (t *ExpensesTable) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Expense, error) {
	query := psql.Delete(
		dm.From("expenses"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		dm.Returning(expenseColumns...),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Expense]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}
