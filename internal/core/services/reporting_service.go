package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/my_bank_api/internal/apperrors"
	"github.com/SscSPs/my_bank_api/internal/core/domain"
	portsrepo "github.com/SscSPs/my_bank_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/my_bank_api/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingSvcFacade interface
type reportingService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	txManager   portsrepo.TransactionManager
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.AccountRepositoryFacade, txManager portsrepo.TransactionManager, options ...ServiceOption) portssvc.ReportingSvcFacade {
	return &reportingService{
		BaseService: newBaseService(options...),
		accountRepo: repo,
		txManager:   txManager,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) AverageBalance(ctx context.Context, agencia int) (decimal.Decimal, error) {
	agg, err := s.accountRepo.AggregateBalances(ctx, portsrepo.ByBranch(agencia))
	if err != nil {
		s.LogFailure(ctx, err, "Failed to compute branch average", slog.Int("agencia", agencia))
		return decimal.Zero, err
	}
	return agg.Average, nil
}

func (s *reportingService) BranchSummary(ctx context.Context, agencia int) (domain.BalanceAggregate, error) {
	accounts, err := s.accountRepo.FindAccounts(ctx, portsrepo.ByBranch(agencia), portsrepo.FindOptions{})
	if err != nil {
		s.LogError(ctx, err, "Failed to load branch accounts", slog.Int("agencia", agencia))
		return domain.BalanceAggregate{}, err
	}

	agg, err := domain.Aggregate(accounts)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to summarise branch", slog.Int("agencia", agencia))
		return domain.BalanceAggregate{}, err
	}
	return agg, nil
}

func (s *reportingService) Poorest(ctx context.Context, n int) ([]domain.Account, error) {
	return s.ranked(ctx, n, false)
}

func (s *reportingService) Richest(ctx context.Context, n int) ([]domain.Account, error) {
	return s.ranked(ctx, n, true)
}

func (s *reportingService) ranked(ctx context.Context, n int, desc bool) ([]domain.Account, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1, got %d", apperrors.ErrValidation, n)
	}

	accounts, err := s.accountRepo.FindAccounts(ctx, portsrepo.AccountFilter{}, portsrepo.FindOptions{
		Sort: []portsrepo.SortField{
			{Field: portsrepo.SortByBalance, Desc: desc},
			{Field: portsrepo.SortByName},
		},
		Limit: n,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to rank accounts", slog.Int("quantity", n), slog.Bool("desc", desc))
		return nil, err
	}
	return accounts, nil
}

func (s *reportingService) PromoteTopBalancePerBranch(ctx context.Context) ([]domain.Account, error) {
	var (
		promoted []domain.Account
		private  []domain.Account
		branches []int
		previous = make(map[string]int)
	)

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		snapshot, err := s.accountRepo.FindAccountsForUpdate(txCtx, portsrepo.AccountFilter{})
		if err != nil {
			return err
		}
		for _, acc := range snapshot {
			previous[acc.ID] = acc.Agencia
		}
		if branches, err = s.accountRepo.DistinctBranches(txCtx); err != nil {
			return err
		}

		promoted = domain.SelectPromotions(snapshot)
		now := s.Now()
		for i := range promoted {
			promoted[i].LastUpdatedAt = now
		}
		if err := s.accountRepo.UpdateAccounts(txCtx, promoted); err != nil {
			return err
		}

		private, err = s.accountRepo.FindAccounts(txCtx, portsrepo.ByBranch(domain.PrivateBranch), portsrepo.FindOptions{
			Sort: []portsrepo.SortField{{Field: portsrepo.SortByConta}},
		})
		return err
	})
	if err != nil {
		s.LogFailure(ctx, err, "Private banking promotion failed")
		return nil, err
	}

	s.LogInfo(ctx, "Private banking promotion completed",
		slog.Any("branches", branches),
		slog.Int("promoted", len(promoted)),
		slog.Int("private_accounts", len(private)))

	events := make([]domain.LedgerEvent, 0, len(promoted))
	for _, acc := range promoted {
		event := s.newEvent(domain.EventPromotion, acc)
		event.Amount = decimal.Zero
		event.Fee = decimal.Zero
		from := previous[acc.ID]
		event.Counterpart = &from
		events = append(events, event)
	}
	s.emit(ctx, events...)

	return private, nil
}
