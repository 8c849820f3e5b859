package handlers_test

import (
	"context"

	"github.com/SscSPs/my_bank_api/internal/core/domain"
	portssvc "github.com/SscSPs/my_bank_api/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) GetBalance(ctx context.Context, agencia, conta int) (decimal.Decimal, error) {
	args := m.Called(ctx, agencia, conta)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, agencia, conta int) (int, error) {
	args := m.Called(ctx, agencia, conta)
	return args.Int(0), args.Error(1)
}

func (m *MockAccountService) ImportAccounts(ctx context.Context, accounts []domain.Account) (int64, error) {
	args := m.Called(ctx, accounts)
	return args.Get(0).(int64), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) Deposit(ctx context.Context, agencia, conta int, value decimal.Decimal) (*domain.Account, error) {
	args := m.Called(ctx, agencia, conta, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockTransactionService) Withdraw(ctx context.Context, agencia, conta int, value decimal.Decimal) (*domain.Account, error) {
	args := m.Called(ctx, agencia, conta, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockTransactionService) Transfer(ctx context.Context, origem, destino int, value decimal.Decimal) (*domain.TransferResult, error) {
	args := m.Called(ctx, origem, destino, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferResult), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) AverageBalance(ctx context.Context, agencia int) (decimal.Decimal, error) {
	args := m.Called(ctx, agencia)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingService) BranchSummary(ctx context.Context, agencia int) (domain.BalanceAggregate, error) {
	args := m.Called(ctx, agencia)
	return args.Get(0).(domain.BalanceAggregate), args.Error(1)
}

func (m *MockReportingService) Poorest(ctx context.Context, n int) ([]domain.Account, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockReportingService) Richest(ctx context.Context, n int) ([]domain.Account, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockReportingService) PromoteTopBalancePerBranch(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)
