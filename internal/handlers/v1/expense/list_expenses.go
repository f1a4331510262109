package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/handlers/v1/identity"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// ListExpensesInput is the Huma input for listing expenses.
type ListExpensesInput struct {
	Category  string `query:"category" doc:"Filter by category, e.g. FOOD"`
	StartDate string `query:"startDate" doc:"Inclusive lower bound, YYYY-MM-DD"`
	EndDate   string `query:"endDate" doc:"Inclusive upper bound, YYYY-MM-DD"`
}

// ListExpensesOutput is the Huma output for listing expenses.
type ListExpensesOutput struct {
	Body []Expense
}

// expenseLister is the interface for the expense-listing service.
type expenseLister interface {
	List(ctx context.Context, ownerID uuid.UUID, query service.ExpenseQuery) ([]*service.Expense, error)
}

// ListExpensesHandler handles GET /expenses.
type ListExpensesHandler struct {
	ExpenseService expenseLister
	Auth           *identity.Authenticator
}

// NewListExpensesHandler creates a new ListExpensesHandler.
func NewListExpensesHandler(svc expenseLister, auth *identity.Authenticator) *ListExpensesHandler {
	return &ListExpensesHandler{ExpenseService: svc, Auth: auth}
}

// Register registers the endpoint with the Huma API.
func (h *ListExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-expenses",
		Method:      http.MethodGet,
		Path:        "/expenses",
		Summary:     "List expenses",
		Description: "Returns the authenticated account's expenses, newest first, with optional category and date filters.",
		Tags:        []string{"Expenses"},
		Middlewares: huma.Middlewares{h.Auth.Middleware(api)},
	}, h.handle)
}

func (h *ListExpensesHandler) handle(ctx context.Context, input *ListExpensesInput) (*ListExpensesOutput, error) {
	claim, err := callerIdentity(ctx)
	if err != nil {
		return nil, err
	}

	expenses, err := h.ExpenseService.List(ctx, claim.ID, service.ExpenseQuery{
		Category:  input.Category,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return nil, serviceError(err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("expenseCount", len(expenses))
	}

	result := make([]Expense, len(expenses))
	for i, e := range expenses {
		result[i] = toResponse(e)
	}
	return &ListExpensesOutput{Body: result}, nil
}
