package repositories

import (
	"context"

	"github.com/SscSPs/my_bank_api/internal/core/domain"
)

// AccountFilter selects accounts. Nil fields match everything.
type AccountFilter struct {
	Agencia *int
	Conta   *int
}

// ByBranchAndNumber builds the usual (agencia, conta) filter.
func ByBranchAndNumber(agencia, conta int) AccountFilter {
	return AccountFilter{Agencia: &agencia, Conta: &conta}
}

// ByBranch matches every account of a branch.
func ByBranch(agencia int) AccountFilter {
	return AccountFilter{Agencia: &agencia}
}

// ByNumber matches an account by number alone, as transfers do.
func ByNumber(conta int) AccountFilter {
	return AccountFilter{Conta: &conta}
}

// SortableField is a column accounts can be ordered by.
type SortableField string

const (
	SortByBalance SortableField = "balance"
	SortByName    SortableField = "name"
	SortByConta   SortableField = "conta"
)

// SortField orders results by one field.
type SortField struct {
	Field SortableField
	Desc  bool
}

// FindOptions shapes the result of FindAccounts. A zero Limit means no limit.
type FindOptions struct {
	Sort  []SortField
	Limit int
}

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccounts returns every account matching the filter.
	FindAccounts(ctx context.Context, filter AccountFilter, opts FindOptions) ([]domain.Account, error)

	// FindAccount returns the single account matching the filter.
	// Returns apperrors.ErrNotFound on a miss and apperrors.ErrValidation when more than one account matches.
	FindAccount(ctx context.Context, filter AccountFilter) (*domain.Account, error)
}

// AccountAggregator defines store-side aggregations.
type AccountAggregator interface {
	// AggregateBalances computes sum, count and average over the matching accounts.
	// Returns apperrors.ErrEmptyAggregate when nothing matches.
	AggregateBalances(ctx context.Context, filter AccountFilter) (domain.BalanceAggregate, error)

	// DistinctBranches lists every branch code currently in use, ascending.
	DistinctBranches(ctx context.Context) ([]int, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccounts inserts new accounts; IDs are assigned when empty.
	SaveAccounts(ctx context.Context, accounts []domain.Account) (int64, error)

	// UpdateAccount persists the balance and branch of an existing account.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// UpdateAccounts persists several accounts in one round trip.
	UpdateAccounts(ctx context.Context, accounts []domain.Account) error

	// DeleteAccounts removes the matching accounts and returns how many were removed.
	DeleteAccounts(ctx context.Context, filter AccountFilter) (int64, error)
}

// AccountLocker supports read-modify-write sequences inside a transaction.
type AccountLocker interface {
	// FindAccountForUpdate behaves like FindAccount and locks the row until the
	// surrounding transaction ends. Must be called within WithTransaction.
	FindAccountForUpdate(ctx context.Context, filter AccountFilter) (*domain.Account, error)

	// FindAccountsForUpdate locks and returns every account matching the filter.
	FindAccountsForUpdate(ctx context.Context, filter AccountFilter) ([]domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountAggregator
	AccountWriter
	AccountLocker
}
