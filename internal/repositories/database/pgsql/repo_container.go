package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/sillicon-village/ledger-api/internal/core/ports/repositories"
)

// NewRepositoryProvider creates all pgsql-backed repositories sharing one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PersonRepo:      newPgxPersonRepository(pool),
		AccountRepo:     newPgxAccountRepository(pool),
		TransactionRepo: newPgxTransactionRepository(pool),
	}
}
