package storage

import (
	"context"
	"database/sql"

	"github.com/stephenafamo/bob"

	_ "github.com/lib/pq"

	"github.com/carson-networks/money-manager/internal/config"
	"github.com/carson-networks/money-manager/internal/storage/account"
	"github.com/carson-networks/money-manager/internal/storage/transaction"
)

// Storage is the root of the durable stores. Reads go straight through the
// readers; writes must go through a Writer so they share one transaction.
type Storage struct {
	DB           bob.DB
	Accounts     account.Store
	Transactions transaction.Store
}

func NewStorage(env *config.Config) (*Storage, error) {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	bdb := bob.NewDB(db)

	return &Storage{
		DB:           bdb,
		Accounts:     account.NewReader(bdb),
		Transactions: transaction.NewReader(bdb),
	}, nil
}

// Write begins a database transaction and returns a Writer bound to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
