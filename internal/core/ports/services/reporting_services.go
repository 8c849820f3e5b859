package services

import (
	"context"

	"github.com/SscSPs/my_bank_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingSvcFacade defines the aggregate queries over accounts.
type ReportingSvcFacade interface {
	// AverageBalance returns the mean balance of a branch, computed by the store.
	AverageBalance(ctx context.Context, agencia int) (decimal.Decimal, error)

	// BranchSummary returns sum, count and average of a branch.
	BranchSummary(ctx context.Context, agencia int) (domain.BalanceAggregate, error)

	// Poorest returns the n accounts with the lowest balance, ties by name.
	Poorest(ctx context.Context, n int) ([]domain.Account, error)

	// Richest returns the n accounts with the highest balance, ties by name.
	Richest(ctx context.Context, n int) ([]domain.Account, error)

	// PromoteTopBalancePerBranch moves the richest account of every branch to
	// the private branch and returns all private accounts.
	PromoteTopBalancePerBranch(ctx context.Context) ([]domain.Account, error)
}
