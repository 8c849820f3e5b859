package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/my_bank_api/internal/core/domain"
	portsrepo "github.com/SscSPs/my_bank_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/my_bank_api/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// transactionService applies deposits, withdrawals and transfers. Every
// mutation runs in one store transaction with the affected rows locked.
type transactionService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	txManager   portsrepo.TransactionManager
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.AccountRepositoryFacade, txManager portsrepo.TransactionManager, options ...ServiceOption) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService: newBaseService(options...),
		accountRepo: repo,
		txManager:   txManager,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) Deposit(ctx context.Context, agencia, conta int, value decimal.Decimal) (*domain.Account, error) {
	var updated domain.Account
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		account, err := s.accountRepo.FindAccountForUpdate(txCtx, portsrepo.ByBranchAndNumber(agencia, conta))
		if err != nil {
			return err
		}

		updated = domain.Deposit(*account, value)
		updated.LastUpdatedAt = s.Now()
		return s.accountRepo.UpdateAccount(txCtx, updated)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Deposit failed",
			slog.Int("agencia", agencia), slog.Int("conta", conta), slog.String("value", value.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Deposit applied",
		slog.String("account", updated.Key()), slog.String("value", value.String()), slog.String("balance", updated.Balance.String()))

	event := s.newEvent(domain.EventDeposit, updated)
	event.Amount = value
	event.Fee = decimal.Zero
	s.emit(ctx, event)

	return &updated, nil
}

func (s *transactionService) Withdraw(ctx context.Context, agencia, conta int, value decimal.Decimal) (*domain.Account, error) {
	var updated domain.Account
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		account, err := s.accountRepo.FindAccountForUpdate(txCtx, portsrepo.ByBranchAndNumber(agencia, conta))
		if err != nil {
			return err
		}

		updated, err = domain.Withdraw(*account, value)
		if err != nil {
			return err
		}
		updated.LastUpdatedAt = s.Now()
		return s.accountRepo.UpdateAccount(txCtx, updated)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Withdrawal failed",
			slog.Int("agencia", agencia), slog.Int("conta", conta), slog.String("value", value.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Withdrawal applied",
		slog.String("account", updated.Key()), slog.String("value", value.String()), slog.String("balance", updated.Balance.String()))

	event := s.newEvent(domain.EventWithdraw, updated)
	event.Amount = value
	event.Fee = domain.WithdrawalFee
	s.emit(ctx, event)

	return &updated, nil
}

func (s *transactionService) Transfer(ctx context.Context, origem, destino int, value decimal.Decimal) (*domain.TransferResult, error) {
	var result domain.TransferResult
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		// Lock in ascending account-number order so concurrent opposite
		// transfers cannot deadlock.
		locked := make(map[int]domain.Account, 2)
		for _, conta := range lockOrder(origem, destino) {
			account, err := s.accountRepo.FindAccountForUpdate(txCtx, portsrepo.ByNumber(conta))
			if err != nil {
				return err
			}
			locked[conta] = *account
		}

		var err error
		result, err = domain.Transfer(locked[origem], locked[destino], value)
		if err != nil {
			return err
		}

		now := s.Now()
		result.Source.LastUpdatedAt = now
		result.Destination.LastUpdatedAt = now
		return s.accountRepo.UpdateAccounts(txCtx, []domain.Account{result.Source, result.Destination})
	})
	if err != nil {
		s.LogFailure(ctx, err, "Transfer failed",
			slog.Int("origem", origem), slog.Int("destino", destino), slog.String("value", value.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Transfer applied",
		slog.String("source", result.Source.Key()),
		slog.String("destination", result.Destination.Key()),
		slog.String("value", value.String()),
		slog.String("fee", result.Fee.String()))

	event := s.newEvent(domain.EventTransfer, result.Source)
	event.Amount = value
	event.Fee = result.Fee
	counterpart := result.Destination.Conta
	event.Counterpart = &counterpart
	s.emit(ctx, event)

	return &result, nil
}

// lockOrder returns the distinct account numbers in ascending order.
func lockOrder(a, b int) []int {
	switch {
	case a == b:
		return []int{a}
	case a < b:
		return []int{a, b}
	default:
		return []int{b, a}
	}
}
