package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/handlers/v1/identity"
	"github.com/carson-networks/expense-server/internal/service"
)

// GetExpenseInput is the Huma input for fetching a single expense.
type GetExpenseInput struct {
	ID string `path:"id" doc:"Expense UUID"`
}

// GetExpenseOutput is the Huma output for fetching a single expense.
type GetExpenseOutput struct {
	Body Expense
}

// expenseGetter is the interface for the single-expense lookup service.
type expenseGetter interface {
	Get(ctx context.Context, ownerID uuid.UUID, expenseID uuid.UUID) (*service.Expense, error)
}

// GetExpenseHandler handles GET /expenses/{id}.
type GetExpenseHandler struct {
	ExpenseService expenseGetter
	Auth           *identity.Authenticator
}

// NewGetExpenseHandler creates a new GetExpenseHandler.
func NewGetExpenseHandler(svc expenseGetter, auth *identity.Authenticator) *GetExpenseHandler {
	return &GetExpenseHandler{ExpenseService: svc, Auth: auth}
}

// Register registers the endpoint with the Huma API.
func (h *GetExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-expense",
		Method:      http.MethodGet,
		Path:        "/expenses/{id}",
		Summary:     "Get expense",
		Description: "Returns one of the authenticated account's expenses.",
		Tags:        []string{"Expenses"},
		Middlewares: huma.Middlewares{h.Auth.Middleware(api)},
	}, h.handle)
}

func (h *GetExpenseHandler) handle(ctx context.Context, input *GetExpenseInput) (*GetExpenseOutput, error) {
	claim, err := callerIdentity(ctx)
	if err != nil {
		return nil, err
	}

	expenseID, err := parseExpenseID(input.ID)
	if err != nil {
		return nil, err
	}

	expense, err := h.ExpenseService.Get(ctx, claim.ID, expenseID)
	if err != nil {
		return nil, serviceError(err)
	}

	return &GetExpenseOutput{Body: toResponse(expense)}, nil
}
