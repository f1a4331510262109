package identity

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/service"
)

func newLoginTestAPI(t *testing.T, svc authenticator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewLoginHandler(svc).Register(api)
	return api
}

func TestHTTP_Login_Success(t *testing.T) {
	mockSvc := new(mockIdentityService)
	mockSvc.On("Login", mock.Anything, "alice@example.com", "hunter22").
		Return("signed.jwt.token", nil)

	resp := newLoginTestAPI(t, mockSvc).Post("/auth/login", LoginBody{
		Email:    "alice@example.com",
		Password: "hunter22",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body TokenResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "signed.jwt.token", body.AccessToken)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Login_BadCredentials(t *testing.T) {
	mockSvc := new(mockIdentityService)
	mockSvc.On("Login", mock.Anything, "alice@example.com", "wrong").
		Return("", service.ErrAuthenticationFailed)

	resp := newLoginTestAPI(t, mockSvc).Post("/auth/login", LoginBody{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Login_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockIdentityService)

	// Huma schema validation rejects the request before the handler runs.
	// A map is used so the password key is truly absent from the JSON body.
	resp := newLoginTestAPI(t, mockSvc).Post("/auth/login", map[string]any{
		"email": "alice@example.com",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Login")
}

func TestHTTP_Login_ServiceError(t *testing.T) {
	mockSvc := new(mockIdentityService)
	mockSvc.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("database unavailable"))

	resp := newLoginTestAPI(t, mockSvc).Post("/auth/login", LoginBody{
		Email:    "alice@example.com",
		Password: "hunter22",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.NotContains(t, resp.Body.String(), "database unavailable")
	mockSvc.AssertExpectations(t)
}
