package pgsql

import (
	portsrepo "github.com/SscSPs/my_bank_api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every repository onto a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	base := BaseRepository{Pool: pool}
	return &portsrepo.RepositoryProvider{
		AccountRepo: newPgxAccountRepository(base),
		TxManager:   &base,
	}
}
