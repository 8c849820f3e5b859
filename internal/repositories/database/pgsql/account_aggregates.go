package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/my_bank_api/internal/apperrors"
	"github.com/SscSPs/my_bank_api/internal/core/domain"
	portsrepo "github.com/SscSPs/my_bank_api/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// AggregateBalances computes SUM, COUNT and AVG of balance over the matching accounts.
func (r *PgxAccountRepository) AggregateBalances(ctx context.Context, filter portsrepo.AccountFilter) (domain.BalanceAggregate, error) {
	where, args := whereClause(filter)
	query := `SELECT COALESCE(SUM(balance), 0), COUNT(*), COALESCE(ROUND(AVG(balance), 8), 0) FROM accounts` + where

	var (
		sum, avg decimal.Decimal
		count    int
	)
	if err := r.querier(ctx).QueryRow(ctx, query, args...).Scan(&sum, &count, &avg); err != nil {
		return domain.BalanceAggregate{}, fmt.Errorf("%w: aggregating balances: %w", apperrors.ErrStoreFailure, err)
	}
	if count == 0 {
		return domain.BalanceAggregate{}, apperrors.ErrEmptyAggregate
	}

	return domain.BalanceAggregate{Sum: sum, Count: count, Average: avg}, nil
}

// DistinctBranches returns every agencia in use, ascending.
func (r *PgxAccountRepository) DistinctBranches(ctx context.Context) ([]int, error) {
	rows, err := r.querier(ctx).Query(ctx, `SELECT DISTINCT agencia FROM accounts ORDER BY agencia`)
	if err != nil {
		return nil, fmt.Errorf("%w: listing branches: %w", apperrors.ErrStoreFailure, err)
	}
	defer rows.Close()

	branches := make([]int, 0)
	for rows.Next() {
		var agencia int
		if err := rows.Scan(&agencia); err != nil {
			return nil, fmt.Errorf("%w: scanning branch: %w", apperrors.ErrStoreFailure, err)
		}
		branches = append(branches, agencia)
	}
	return branches, rows.Err()
}
