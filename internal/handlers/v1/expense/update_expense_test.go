package expense

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/service"
)

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func TestParseUpdateExpenseInput_PartialBody(t *testing.T) {
	expenseID := uuid.Must(uuid.NewV4())

	input := &UpdateExpenseInput{
		ID: expenseID.String(),
		Body: UpdateExpenseBody{
			Amount:   floatPtr(60),
			Category: strPtr("TRAVEL"),
		},
	}

	parsedID, update, err := parseUpdateExpenseInput(input)
	assert.NoError(t, err)
	assert.Equal(t, expenseID, parsedID)
	assert.True(t, update.Amount.IsValue())
	assert.True(t, update.Amount.MustGet().Equal(decimal.RequireFromString("60")))
	assert.True(t, update.Category.IsValue())
	assert.Equal(t, "TRAVEL", update.Category.MustGet())
	assert.False(t, update.Description.IsValue())
	assert.False(t, update.Date.IsValue())
}

func TestParseUpdateExpenseInput_EmptyBody(t *testing.T) {
	expenseID := uuid.Must(uuid.NewV4())

	input := &UpdateExpenseInput{ID: expenseID.String()}

	_, update, err := parseUpdateExpenseInput(input)
	assert.NoError(t, err)
	assert.False(t, update.Description.IsValue())
	assert.False(t, update.Amount.IsValue())
	assert.False(t, update.Category.IsValue())
	assert.False(t, update.Date.IsValue())
}

func TestHTTP_UpdateExpense_AmountOnly(t *testing.T) {
	mockSvc := new(mockExpenseService)
	api, caller := newTestAPI(t, mockSvc)

	updated := sampleExpense(caller.ID)
	updated.Amount = decimal.RequireFromString("60")
	mockSvc.On("Update", mock.Anything, caller.ID, updated.ID,
		mock.MatchedBy(func(u service.ExpenseUpdate) bool {
			return u.Amount.IsValue() && u.Amount.MustGet().Equal(decimal.RequireFromString("60")) &&
				!u.Description.IsValue() && !u.Category.IsValue() && !u.Date.IsValue()
		})).Return(updated, nil)

	resp := api.Patch("/expenses/"+updated.ID.String(), testAuthHeader, UpdateExpenseBody{
		Amount: floatPtr(60),
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Expense
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.InDelta(t, 60, body.Amount, 0.0001)
	assert.Equal(t, "Weekly groceries", body.Description)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateExpense_BadDescription(t *testing.T) {
	mockSvc := new(mockExpenseService)
	api, _ := newTestAPI(t, mockSvc)

	resp := api.Patch("/expenses/"+uuid.Must(uuid.NewV4()).String(), testAuthHeader, UpdateExpenseBody{
		Description: strPtr("<script>"),
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Update")
}

func TestHTTP_UpdateExpense_MalformedID(t *testing.T) {
	mockSvc := new(mockExpenseService)
	api, _ := newTestAPI(t, mockSvc)

	resp := api.Patch("/expenses/not-a-uuid", testAuthHeader, UpdateExpenseBody{
		Amount: floatPtr(60),
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Update")
}

func TestHTTP_UpdateExpense_InvalidCategory(t *testing.T) {
	mockSvc := new(mockExpenseService)
	api, _ := newTestAPI(t, mockSvc)

	mockSvc.On("Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, service.ErrInvalidCategory)

	resp := api.Patch("/expenses/"+uuid.Must(uuid.NewV4()).String(), testAuthHeader, UpdateExpenseBody{
		Category: strPtr("SNACKS"),
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateExpense_NotFound(t *testing.T) {
	mockSvc := new(mockExpenseService)
	api, _ := newTestAPI(t, mockSvc)

	mockSvc.On("Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, service.ErrNotFound)

	resp := api.Patch("/expenses/"+uuid.Must(uuid.NewV4()).String(), testAuthHeader, UpdateExpenseBody{
		Amount: floatPtr(60),
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateExpense_NoToken(t *testing.T) {
	mockSvc := new(mockExpenseService)
	api, _ := newTestAPI(t, mockSvc)

	resp := api.Patch("/expenses/"+uuid.Must(uuid.NewV4()).String(), UpdateExpenseBody{
		Amount: floatPtr(60),
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "Update")
}
