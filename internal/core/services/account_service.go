package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/my_bank_api/internal/apperrors"
	"github.com/SscSPs/my_bank_api/internal/core/domain"
	portsrepo "github.com/SscSPs/my_bank_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/my_bank_api/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	txManager   portsrepo.TransactionManager
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, txManager portsrepo.TransactionManager, options ...ServiceOption) portssvc.AccountSvcFacade {
	return &accountService{
		BaseService: newBaseService(options...),
		accountRepo: repo,
		txManager:   txManager,
	}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccounts(ctx, portsrepo.AccountFilter{}, portsrepo.FindOptions{
		Sort: []portsrepo.SortField{{Field: portsrepo.SortByConta}},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) GetBalance(ctx context.Context, agencia, conta int) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccount(ctx, portsrepo.ByBranchAndNumber(agencia, conta))
	if err != nil {
		s.LogFailure(ctx, err, "Failed to get account balance",
			slog.Int("agencia", agencia), slog.Int("conta", conta))
		return decimal.Zero, err
	}
	return account.Balance, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, agencia, conta int) (int, error) {
	var remaining int
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		deleted, err := s.accountRepo.DeleteAccounts(txCtx, portsrepo.ByBranchAndNumber(agencia, conta))
		if err != nil {
			return err
		}
		if deleted == 0 {
			return apperrors.ErrNotFound
		}

		agg, err := s.accountRepo.AggregateBalances(txCtx, portsrepo.ByBranch(agencia))
		switch {
		case errors.Is(err, apperrors.ErrEmptyAggregate):
			remaining = 0
		case err != nil:
			return err
		default:
			remaining = agg.Count
		}
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to delete account",
			slog.Int("agencia", agencia), slog.Int("conta", conta))
		return 0, err
	}

	s.LogInfo(ctx, "Account deleted",
		slog.Int("agencia", agencia), slog.Int("conta", conta), slog.Int("remaining_in_branch", remaining))
	return remaining, nil
}

func (s *accountService) ImportAccounts(ctx context.Context, accounts []domain.Account) (int64, error) {
	now := s.Now()
	toSave := make([]domain.Account, len(accounts))
	seen := make(map[string]struct{}, len(accounts))
	for i, acc := range accounts {
		if acc.Name == "" {
			return 0, fmt.Errorf("%w: account at index %d has no name", apperrors.ErrValidation, i)
		}
		if _, dup := seen[acc.Key()]; dup {
			return 0, fmt.Errorf("%w: account %s appears more than once", apperrors.ErrValidation, acc.Key())
		}
		seen[acc.Key()] = struct{}{}

		acc.CreatedAt = now
		acc.LastUpdatedAt = now
		toSave[i] = acc
	}

	imported, err := s.accountRepo.SaveAccounts(ctx, toSave)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to import accounts", slog.Int("count", len(accounts)))
		return 0, err
	}

	s.LogInfo(ctx, "Accounts imported", slog.Int64("count", imported))
	return imported, nil
}
