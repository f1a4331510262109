package storage

import (
	"database/sql"
	"log"

	_ "github.com/lib/pq"

	"github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// Storage bundles the database handle with the per-table access objects.
// The table fields are interfaces so tests can swap in mocks.
type Storage struct {
	DB       *sql.DB
	Users    sqlconfig.IUserTable
	Expenses sqlconfig.IExpenseTable
}

func NewStorage(env *config.Config) *Storage {
	db, err := sql.Open("postgres", env.DatabaseURL())
	if err != nil {
		log.Fatal(err)
	}

	return &Storage{
		DB:       db,
		Users:    sqlconfig.NewUsersTable(db),
		Expenses: sqlconfig.NewExpensesTable(db),
	}
}
