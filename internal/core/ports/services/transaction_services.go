package services

import (
	"context"

	"github.com/SscSPs/my_bank_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionSvcFacade applies balance mutations atomically.
type TransactionSvcFacade interface {
	// Deposit credits value to (agencia, conta) and returns the updated account.
	Deposit(ctx context.Context, agencia, conta int, value decimal.Decimal) (*domain.Account, error)

	// Withdraw debits value plus the withdrawal fee from (agencia, conta).
	Withdraw(ctx context.Context, agencia, conta int, value decimal.Decimal) (*domain.Account, error)

	// Transfer moves value between two accounts looked up by account number only.
	Transfer(ctx context.Context, origem, destino int, value decimal.Decimal) (*domain.TransferResult, error)
}
