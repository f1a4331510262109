package expense

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/handlers/v1/identity"
	"github.com/carson-networks/expense-server/internal/service"
)

// Expense is the API response model for an expense record.
type Expense struct {
	ID          string  `json:"id" doc:"Expense UUID"`
	UserID      string  `json:"userId" doc:"Owning account UUID"`
	Description string  `json:"description" doc:"Free-text description"`
	Amount      float64 `json:"amount" doc:"Decimal amount, greater than zero"`
	Category    string  `json:"category" doc:"Expense category"`
	Date        string  `json:"date" doc:"Calendar date, YYYY-MM-DD"`
	CreatedAt   string  `json:"createdAt" doc:"RFC3339 creation timestamp"`
	UpdatedAt   string  `json:"updatedAt" doc:"RFC3339 last-update timestamp"`
}

func toResponse(e *service.Expense) Expense {
	return Expense{
		ID:          e.ID.String(),
		UserID:      e.OwnerID.String(),
		Description: e.Description,
		Amount:      e.Amount.InexactFloat64(),
		Category:    string(e.Category),
		Date:        e.Date.Format(time.DateOnly),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
	}
}

const (
	minDescriptionLength = 3
	maxDescriptionLength = 100
)

// Letters (any script), digits, spaces, and -_.,
var descriptionPattern = regexp.MustCompile(`^[\p{L}0-9 \-_.,]+$`)

// validDescription enforces the length and character-set constraint at the
// boundary, before the core is invoked.
func validDescription(description string) bool {
	length := utf8.RuneCountInString(description)
	if length < minDescriptionLength || length > maxDescriptionLength {
		return false
	}
	return descriptionPattern.MatchString(description)
}

// parseExpenseID rejects identifiers that are not syntactically valid UUIDs.
func parseExpenseID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "malformed expense id")
	}
	return id, nil
}

// callerIdentity pulls the verified claim placed by the auth middleware.
func callerIdentity(ctx context.Context) (*service.Identity, error) {
	claim, ok := identity.FromContext(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, service.ErrAuthenticationFailed.Error())
	}
	return claim, nil
}

// serviceError maps expense service errors to HTTP errors per the taxonomy:
// validation 400, auth 401, not-found 404, everything else a generic 500.
func serviceError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInvalidDate):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAuthenticationFailed):
		return huma.NewError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, "failed to process request")
	}
}
