package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/handlers/v1/identity"
	"github.com/carson-networks/expense-server/internal/service"
)

// DeleteExpenseInput is the Huma input for deleting an expense.
type DeleteExpenseInput struct {
	ID string `path:"id" doc:"Expense UUID"`
}

// DeleteExpenseOutput is the Huma output for deleting an expense: the
// deleted record's last state, for confirmation.
type DeleteExpenseOutput struct {
	Body Expense
}

// expenseRemover is the interface for the expense-deletion service.
type expenseRemover interface {
	Remove(ctx context.Context, ownerID uuid.UUID, expenseID uuid.UUID) (*service.Expense, error)
}

// DeleteExpenseHandler handles DELETE /expenses/{id}.
type DeleteExpenseHandler struct {
	ExpenseService expenseRemover
	Auth           *identity.Authenticator
}

// NewDeleteExpenseHandler creates a new DeleteExpenseHandler.
func NewDeleteExpenseHandler(svc expenseRemover, auth *identity.Authenticator) *DeleteExpenseHandler {
	return &DeleteExpenseHandler{ExpenseService: svc, Auth: auth}
}

// Register registers the endpoint with the Huma API.
func (h *DeleteExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-expense",
		Method:      http.MethodDelete,
		Path:        "/expenses/{id}",
		Summary:     "Delete expense",
		Description: "Deletes one of the authenticated account's expenses and returns its last state.",
		Tags:        []string{"Expenses"},
		Middlewares: huma.Middlewares{h.Auth.Middleware(api)},
	}, h.handle)
}

func (h *DeleteExpenseHandler) handle(ctx context.Context, input *DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	claim, err := callerIdentity(ctx)
	if err != nil {
		return nil, err
	}

	expenseID, err := parseExpenseID(input.ID)
	if err != nil {
		return nil, err
	}

	expense, err := h.ExpenseService.Remove(ctx, claim.ID, expenseID)
	if err != nil {
		return nil, serviceError(err)
	}

	return &DeleteExpenseOutput{Body: toResponse(expense)}, nil
}
