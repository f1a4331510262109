package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/handlers/v1/identity"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// CreateExpenseBody is the request body for creating an expense.
type CreateExpenseBody struct {
	Description string  `json:"description" required:"true" doc:"Free text, 3-100 letters/digits/spaces/-_.,"`
	Amount      float64 `json:"amount" required:"true" doc:"Decimal amount, greater than zero"`
	Category    string  `json:"category" required:"true" doc:"One of the fixed categories, e.g. FOOD"`
	Date        string  `json:"date" required:"true" doc:"Calendar date, YYYY-MM-DD"`
}

// CreateExpenseInput is the Huma input for creating an expense.
type CreateExpenseInput struct {
	Body CreateExpenseBody
}

// CreateExpenseOutput is the Huma output for creating an expense.
type CreateExpenseOutput struct {
	Body Expense
}

// expenseCreator is the interface for the expense-creation service.
type expenseCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, create service.ExpenseCreate) (*service.Expense, error)
}

// CreateExpenseHandler handles POST /expenses.
type CreateExpenseHandler struct {
	ExpenseService expenseCreator
	Auth           *identity.Authenticator
}

// NewCreateExpenseHandler creates a new CreateExpenseHandler.
func NewCreateExpenseHandler(svc expenseCreator, auth *identity.Authenticator) *CreateExpenseHandler {
	return &CreateExpenseHandler{ExpenseService: svc, Auth: auth}
}

// Register registers the endpoint with the Huma API.
func (h *CreateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-expense",
		Method:        http.MethodPost,
		Path:          "/expenses",
		Summary:       "Create expense",
		Description:   "Creates an expense owned by the authenticated account.",
		Tags:          []string{"Expenses"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   huma.Middlewares{h.Auth.Middleware(api)},
	}, h.handle)
}

func (h *CreateExpenseHandler) handle(ctx context.Context, input *CreateExpenseInput) (*CreateExpenseOutput, error) {
	claim, err := callerIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if !validDescription(input.Body.Description) {
		return nil, huma.NewError(http.StatusBadRequest,
			"description must be 3-100 characters of letters, digits, spaces, or -_.,")
	}

	var stopTimer func()
	if logData := logging.GetLogData(ctx); logData != nil {
		stopTimer = logData.AddTiming("createExpenseMs")
	}
	expense, err := h.ExpenseService.Create(ctx, claim.ID, service.ExpenseCreate{
		Description: input.Body.Description,
		Amount:      decimal.NewFromFloat(input.Body.Amount),
		Category:    input.Body.Category,
		Date:        input.Body.Date,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, serviceError(err)
	}

	return &CreateExpenseOutput{Body: toResponse(expense)}, nil
}
