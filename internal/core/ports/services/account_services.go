package services

import (
	"context"

	"github.com/SscSPs/my_bank_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// ListAccounts returns every account.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// GetBalance returns the balance of the account identified by (agencia, conta).
	GetBalance(ctx context.Context, agencia, conta int) (decimal.Decimal, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// DeleteAccount removes the account and returns how many accounts remain in its branch.
	DeleteAccount(ctx context.Context, agencia, conta int) (int, error)

	// ImportAccounts loads accounts created outside the API (seed data).
	ImportAccounts(ctx context.Context, accounts []domain.Account) (int64, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
