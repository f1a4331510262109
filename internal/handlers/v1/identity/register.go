package identity

import (
	"context"
	"net/http"
	"net/mail"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterBody is the request body for creating an account.
type RegisterBody struct {
	Email    string `json:"email" required:"true" doc:"Account email address"`
	Password string `json:"password" required:"true" doc:"Plaintext password, minimum 6 characters"`
}

// RegisterInput is the Huma input for creating an account.
type RegisterInput struct {
	Body RegisterBody
}

// TokenResponse is the response body for both register and login.
type TokenResponse struct {
	AccessToken string `json:"access_token" doc:"Signed bearer token, 1-day lifetime"`
}

// RegisterOutput is the Huma output for creating an account.
type RegisterOutput struct {
	Body TokenResponse
}

// registrar is the interface for the account-creation service.
type registrar interface {
	Register(ctx context.Context, email, password string) (string, error)
}

// RegisterHandler handles POST /auth/register.
type RegisterHandler struct {
	IdentityService registrar
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(svc registrar) *RegisterHandler {
	return &RegisterHandler{IdentityService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "register",
		Method:        http.MethodPost,
		Path:          "/auth/register",
		Summary:       "Register account",
		Description:   "Creates an account and returns a bearer token for it.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	if _, err := mail.ParseAddress(input.Body.Email); err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid email address")
	}

	token, err := h.IdentityService.Register(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, serviceError(err)
	}

	return &RegisterOutput{Body: TokenResponse{AccessToken: token}}, nil
}
