package service

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// Category is the fixed expense category enumeration.
type Category string

const (
	CategoryFood          Category = "FOOD"
	CategoryTransport     Category = "TRANSPORT"
	CategoryHousing       Category = "HOUSING"
	CategoryUtilities     Category = "UTILITIES"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryHealth        Category = "HEALTH"
	CategoryEducation     Category = "EDUCATION"
	CategoryShopping      Category = "SHOPPING"
	CategoryTravel        Category = "TRAVEL"
	CategoryOther         Category = "OTHER"
)

var categories = map[Category]struct{}{
	CategoryFood:          {},
	CategoryTransport:     {},
	CategoryHousing:       {},
	CategoryUtilities:     {},
	CategoryEntertainment: {},
	CategoryHealth:        {},
	CategoryEducation:     {},
	CategoryShopping:      {},
	CategoryTravel:        {},
	CategoryOther:         {},
}

// ParseCategory validates membership in the enumeration.
func ParseCategory(raw string) (Category, error) {
	c := Category(raw)
	if _, ok := categories[c]; !ok {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// expenseDateLayout is the calendar-date wire format; expenses carry no
// time-of-day semantics.
const expenseDateLayout = time.DateOnly

func parseExpenseDate(raw string) (time.Time, error) {
	date, err := time.Parse(expenseDateLayout, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

// Expense represents an expense in the service layer.
type Expense struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Description string
	Amount      decimal.Decimal
	Category    Category
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ExpenseCreate is the input for creating an expense. Category and Date stay
// raw here so the service owns enum and calendar validation.
type ExpenseCreate struct {
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        string
}

// ExpenseUpdate is a partial update: unset fields leave the stored value
// unchanged. Per-field presence flags keep "not supplied" distinct from
// "set to the zero value".
type ExpenseUpdate struct {
	Description omit.Val[string]
	Amount      omit.Val[decimal.Decimal]
	Category    omit.Val[string]
	Date        omit.Val[string]
}

// ExpenseQuery carries the optional list filters in wire form.
type ExpenseQuery struct {
	Category  string
	StartDate string
	EndDate   string
}

func expenseFromStorage(row *sqlconfig.Expense) *Expense {
	return &Expense{
		ID:          row.ID,
		OwnerID:     row.UserID,
		Description: row.Description,
		Amount:      row.Amount,
		Category:    Category(row.Category),
		Date:        row.ExpenseDate,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
