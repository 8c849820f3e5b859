package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/my_bank_api/internal/apperrors"
	"github.com/SscSPs/my_bank_api/internal/core/domain"
	portsrepo "github.com/SscSPs/my_bank_api/internal/core/ports/repositories"
	"github.com/SscSPs/my_bank_api/internal/models"
	"github.com/SscSPs/my_bank_api/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(base BaseRepository) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: base}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.ID,
		&m.Agencia,
		&m.Conta,
		&m.Name,
		&m.Balance,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxAccountRepository) queryAccounts(ctx context.Context, filter portsrepo.AccountFilter, opts portsrepo.FindOptions, forUpdate bool) ([]domain.Account, error) {
	query, args, err := selectAccountsQuery(filter, opts, forUpdate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	rows, err := r.querier(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying accounts: %w", apperrors.ErrStoreFailure, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning account row: %w", apperrors.ErrStoreFailure, err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating account rows: %w", apperrors.ErrStoreFailure, err)
	}

	return mapping.ToDomainAccountSlice(accounts), nil
}

// single narrows a result set to exactly one account.
func single(accounts []domain.Account, filter portsrepo.AccountFilter) (*domain.Account, error) {
	switch len(accounts) {
	case 0:
		return nil, apperrors.ErrNotFound
	case 1:
		return &accounts[0], nil
	default:
		conta := 0
		if filter.Conta != nil {
			conta = *filter.Conta
		}
		return nil, fmt.Errorf("%w: account number %d is ambiguous", apperrors.ErrValidation, conta)
	}
}

// FindAccounts returns the accounts matching filter, ordered and limited by opts.
func (r *PgxAccountRepository) FindAccounts(ctx context.Context, filter portsrepo.AccountFilter, opts portsrepo.FindOptions) ([]domain.Account, error) {
	return r.queryAccounts(ctx, filter, opts, false)
}

// FindAccount returns the single account matching filter.
func (r *PgxAccountRepository) FindAccount(ctx context.Context, filter portsrepo.AccountFilter) (*domain.Account, error) {
	accounts, err := r.queryAccounts(ctx, filter, portsrepo.FindOptions{Limit: 2}, false)
	if err != nil {
		return nil, err
	}
	return single(accounts, filter)
}

// FindAccountForUpdate returns the single matching account and holds a row lock on it.
func (r *PgxAccountRepository) FindAccountForUpdate(ctx context.Context, filter portsrepo.AccountFilter) (*domain.Account, error) {
	if txFromContext(ctx) == nil {
		return nil, fmt.Errorf("%w: row lock requested outside a transaction", apperrors.ErrStoreFailure)
	}
	accounts, err := r.queryAccounts(ctx, filter, portsrepo.FindOptions{Limit: 2}, true)
	if err != nil {
		return nil, err
	}
	return single(accounts, filter)
}

// FindAccountsForUpdate returns and locks every matching account.
func (r *PgxAccountRepository) FindAccountsForUpdate(ctx context.Context, filter portsrepo.AccountFilter) ([]domain.Account, error) {
	if txFromContext(ctx) == nil {
		return nil, fmt.Errorf("%w: row lock requested outside a transaction", apperrors.ErrStoreFailure)
	}
	return r.queryAccounts(ctx, filter, portsrepo.FindOptions{
		Sort: []portsrepo.SortField{{Field: portsrepo.SortByConta}},
	}, true)
}

// SaveAccounts bulk-inserts accounts with COPY.
func (r *PgxAccountRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) (int64, error) {
	if len(accounts) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	rows := make([][]any, 0, len(accounts))
	for _, acc := range accounts {
		m := mapping.ToModelAccount(acc)
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		if m.CreatedAt.IsZero() {
			m.CreatedAt = now
		}
		if m.LastUpdatedAt.IsZero() {
			m.LastUpdatedAt = m.CreatedAt
		}

		var balance pgtype.Numeric
		if err := balance.Scan(m.Balance.String()); err != nil {
			return 0, fmt.Errorf("%w: invalid balance for account %d/%d: %w", apperrors.ErrValidation, m.Agencia, m.Conta, err)
		}

		rows = append(rows, []any{m.ID, m.Agencia, m.Conta, m.Name, balance, m.CreatedAt, m.LastUpdatedAt})
	}

	copied, err := r.querier(ctx).CopyFrom(
		ctx,
		pgx.Identifier{"accounts"},
		[]string{"id", "agencia", "conta", "name", "balance", "created_at", "updated_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return 0, fmt.Errorf("%w: %s", apperrors.ErrDuplicate, pgErr.Detail)
		}
		return 0, fmt.Errorf("%w: copying accounts: %w", apperrors.ErrStoreFailure, err)
	}

	return copied, nil
}

const updateAccountSQL = `
	UPDATE accounts
	SET agencia = $2, balance = $3, updated_at = $4
	WHERE id = $1
`

// UpdateAccount persists the branch and balance of an existing account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	cmdTag, err := r.querier(ctx).Exec(ctx, updateAccountSQL, m.ID, m.Agencia, m.Balance, updatedAt(m))
	if err != nil {
		return translateWriteError(err, "updating account")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateAccounts persists several accounts in a single batch.
func (r *PgxAccountRepository) UpdateAccounts(ctx context.Context, accounts []domain.Account) error {
	if len(accounts) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, acc := range accounts {
		m := mapping.ToModelAccount(acc)
		batch.Queue(updateAccountSQL, m.ID, m.Agencia, m.Balance, updatedAt(m))
	}

	br := r.querier(ctx).SendBatch(ctx, batch)
	defer br.Close()

	for _, acc := range accounts {
		cmdTag, err := br.Exec()
		if err != nil {
			return translateWriteError(err, "updating account "+acc.Key())
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, acc.Key())
		}
	}
	return nil
}

// DeleteAccounts removes the matching accounts.
func (r *PgxAccountRepository) DeleteAccounts(ctx context.Context, filter portsrepo.AccountFilter) (int64, error) {
	where, args := whereClause(filter)
	cmdTag, err := r.querier(ctx).Exec(ctx, "DELETE FROM accounts"+where, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting accounts: %w", apperrors.ErrStoreFailure, err)
	}
	return cmdTag.RowsAffected(), nil
}

func updatedAt(m models.Account) time.Time {
	if m.LastUpdatedAt.IsZero() {
		return time.Now().UTC()
	}
	return m.LastUpdatedAt
}

func translateWriteError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
		return fmt.Errorf("%w: %s: %s", apperrors.ErrDuplicate, op, pgErr.Detail)
	}
	return fmt.Errorf("%w: %s: %w", apperrors.ErrStoreFailure, op, err)
}
