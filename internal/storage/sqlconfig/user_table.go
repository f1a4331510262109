package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var userColumns = []any{"id", "email", "password_hash", "created_at", "updated_at"}

// Ensure UsersTable implements IUserTable at compile time.
var _ IUserTable = (*UsersTable)(nil)

// UsersTable provides access to the users table.
type UsersTable struct {
	exec bob.Executor
}

// NewUsersTable creates a UsersTable for the given database.
func NewUsersTable(db *sql.DB) *UsersTable {
	return &UsersTable{exec: bob.NewDB(db)}
}

// Insert creates a new user and returns the stored record. A duplicate email
// surfaces as ErrUniqueViolation.
func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	query := psql.Insert(
		im.Into("users", "email", "password_hash"),
		im.Values(psql.Arg(create.Email), psql.Arg(create.PasswordHash)),
		im.Returning(userColumns...),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[User]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

// FindByEmail retrieves a user by the unique email column.
func (t *UsersTable) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := psql.Select(
		sm.Columns(userColumns...),
		sm.From("users"),
		sm.Where(psql.Quote("email").EQ(psql.Arg(email))),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[User]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

// FindByID retrieves a user by primary key.
func (t *UsersTable) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := psql.Select(
		sm.Columns(userColumns...),
		sm.From("users"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[User]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}
