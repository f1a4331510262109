package identity

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/service"
)

// LoginBody is the request body for authenticating an account.
type LoginBody struct {
	Email    string `json:"email" required:"true" doc:"Account email address"`
	Password string `json:"password" required:"true" doc:"Plaintext password"`
}

// LoginInput is the Huma input for authenticating an account.
type LoginInput struct {
	Body LoginBody
}

// LoginOutput is the Huma output for authenticating an account.
type LoginOutput struct {
	Body TokenResponse
}

// authenticator is the interface for the credential-check service.
type authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// LoginHandler handles POST /auth/login.
type LoginHandler struct {
	IdentityService authenticator
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc authenticator) *LoginHandler {
	return &LoginHandler{IdentityService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/auth/login",
		Summary:     "Login",
		Description: "Authenticates credentials and returns a bearer token.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	token, err := h.IdentityService.Login(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, serviceError(err)
	}

	return &LoginOutput{Body: TokenResponse{AccessToken: token}}, nil
}

// serviceError maps identity service errors to HTTP errors. Unexpected
// failures stay generic so internals never leak to the caller.
func serviceError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidCredentialFormat),
		errors.Is(err, service.ErrDuplicateAccount):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAuthenticationFailed):
		return huma.NewError(http.StatusUnauthorized, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, "failed to process request")
	}
}
