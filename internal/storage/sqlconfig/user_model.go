package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents a user record. PasswordHash never leaves the service layer.
type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// UserCreate is the input for creating a new user.
type UserCreate struct {
	Email        string
	PasswordHash string
}

// IUserTable defines the interface for user storage operations.
// This abstraction allows swapping the implementation without changing callers.
type IUserTable interface {
	Insert(ctx context.Context, create *UserCreate) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
}
