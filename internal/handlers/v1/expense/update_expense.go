package expense

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/handlers/v1/identity"
	"github.com/carson-networks/expense-server/internal/service"
)

// UpdateExpenseBody is the request body for a partial expense update.
// Absent fields leave the stored value unchanged.
type UpdateExpenseBody struct {
	Description *string  `json:"description,omitempty" doc:"Free text, 3-100 letters/digits/spaces/-_.,"`
	Amount      *float64 `json:"amount,omitempty" doc:"Decimal amount, greater than zero"`
	Category    *string  `json:"category,omitempty" doc:"One of the fixed categories, e.g. FOOD"`
	Date        *string  `json:"date,omitempty" doc:"Calendar date, YYYY-MM-DD"`
}

// UpdateExpenseInput is the Huma input for updating an expense.
type UpdateExpenseInput struct {
	ID   string `path:"id" doc:"Expense UUID"`
	Body UpdateExpenseBody
}

// UpdateExpenseOutput is the Huma output for updating an expense.
type UpdateExpenseOutput struct {
	Body Expense
}

// expenseUpdater is the interface for the partial-update service.
type expenseUpdater interface {
	Update(ctx context.Context, ownerID uuid.UUID, expenseID uuid.UUID, update service.ExpenseUpdate) (*service.Expense, error)
}

// UpdateExpenseHandler handles PATCH /expenses/{id}.
type UpdateExpenseHandler struct {
	ExpenseService expenseUpdater
	Auth           *identity.Authenticator
}

// NewUpdateExpenseHandler creates a new UpdateExpenseHandler.
func NewUpdateExpenseHandler(svc expenseUpdater, auth *identity.Authenticator) *UpdateExpenseHandler {
	return &UpdateExpenseHandler{ExpenseService: svc, Auth: auth}
}

// Register registers the endpoint with the Huma API.
func (h *UpdateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-expense",
		Method:      http.MethodPatch,
		Path:        "/expenses/{id}",
		Summary:     "Update expense",
		Description: "Partially updates one of the authenticated account's expenses; only supplied fields change.",
		Tags:        []string{"Expenses"},
		Middlewares: huma.Middlewares{h.Auth.Middleware(api)},
	}, h.handle)
}

// parseUpdateExpenseInput converts the wire body into the service's
// presence-flagged update, enforcing the boundary description check.
func parseUpdateExpenseInput(input *UpdateExpenseInput) (uuid.UUID, service.ExpenseUpdate, error) {
	expenseID, err := parseExpenseID(input.ID)
	if err != nil {
		return uuid.Nil, service.ExpenseUpdate{}, err
	}

	update := service.ExpenseUpdate{}
	if input.Body.Description != nil {
		if !validDescription(*input.Body.Description) {
			return uuid.Nil, service.ExpenseUpdate{}, huma.NewError(http.StatusBadRequest,
				"description must be 3-100 characters of letters, digits, spaces, or -_.,")
		}
		update.Description = omit.From(*input.Body.Description)
	}
	if input.Body.Amount != nil {
		update.Amount = omit.From(decimal.NewFromFloat(*input.Body.Amount))
	}
	if input.Body.Category != nil {
		update.Category = omit.From(*input.Body.Category)
	}
	if input.Body.Date != nil {
		update.Date = omit.From(*input.Body.Date)
	}

	return expenseID, update, nil
}

func (h *UpdateExpenseHandler) handle(ctx context.Context, input *UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	claim, err := callerIdentity(ctx)
	if err != nil {
		return nil, err
	}

	expenseID, update, err := parseUpdateExpenseInput(input)
	if err != nil {
		return nil, err
	}

	expense, err := h.ExpenseService.Update(ctx, claim.ID, expenseID, update)
	if err != nil {
		return nil, serviceError(err)
	}

	return &UpdateExpenseOutput{Body: toResponse(expense)}, nil
}
