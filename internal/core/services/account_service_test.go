package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/my_bank_api/internal/apperrors"
	"github.com/SscSPs/my_bank_api/internal/core/domain"
	portsrepo "github.com/SscSPs/my_bank_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/my_bank_api/internal/core/ports/services"
	"github.com/SscSPs/my_bank_api/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type AccountServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockRepo *MockAccountRepository
	tx       *MockTxManager
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockAccountRepository)
	suite.tx = new(MockTxManager)
	suite.service = services.NewAccountService(suite.mockRepo, suite.tx, services.WithClock(fixedClock))
}

func (suite *AccountServiceTestSuite) TestListAccounts() {
	accounts := []domain.Account{
		{Agencia: 10, Conta: 1001, Name: "Ana", Balance: decimal.NewFromInt(10)},
		{Agencia: 20, Conta: 2001, Name: "Davi", Balance: decimal.NewFromInt(500)},
	}
	suite.mockRepo.On("FindAccounts", suite.ctx, portsrepo.AccountFilter{}, mock.AnythingOfType("repositories.FindOptions")).
		Return(accounts, nil).Once()

	got, err := suite.service.ListAccounts(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(accounts, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetBalance_Success() {
	suite.mockRepo.On("FindAccount", suite.ctx, portsrepo.ByBranchAndNumber(10, 1001)).
		Return(&domain.Account{Agencia: 10, Conta: 1001, Balance: decimal.RequireFromString("123.45")}, nil).Once()

	balance, err := suite.service.GetBalance(suite.ctx, 10, 1001)

	suite.Require().NoError(err)
	suite.Equal("123.45", balance.String())
}

func (suite *AccountServiceTestSuite) TestGetBalance_NotFound() {
	suite.mockRepo.On("FindAccount", suite.ctx, portsrepo.ByBranchAndNumber(10, 9)).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetBalance(suite.ctx, 10, 9)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_ReturnsRemainingInBranch() {
	suite.mockRepo.On("DeleteAccounts", suite.ctx, portsrepo.ByBranchAndNumber(10, 1001)).Return(int64(1), nil).Once()
	suite.mockRepo.On("AggregateBalances", suite.ctx, portsrepo.ByBranch(10)).
		Return(domain.BalanceAggregate{Count: 2}, nil).Once()

	remaining, err := suite.service.DeleteAccount(suite.ctx, 10, 1001)

	suite.Require().NoError(err)
	suite.Equal(2, remaining)
	suite.Equal(1, suite.tx.calls)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_LastInBranch() {
	suite.mockRepo.On("DeleteAccounts", suite.ctx, portsrepo.ByBranchAndNumber(30, 3001)).Return(int64(1), nil).Once()
	suite.mockRepo.On("AggregateBalances", suite.ctx, portsrepo.ByBranch(30)).
		Return(domain.BalanceAggregate{}, apperrors.ErrEmptyAggregate).Once()

	remaining, err := suite.service.DeleteAccount(suite.ctx, 30, 3001)

	suite.Require().NoError(err)
	suite.Equal(0, remaining)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_NotFound() {
	suite.mockRepo.On("DeleteAccounts", suite.ctx, portsrepo.ByBranchAndNumber(10, 9)).Return(int64(0), nil).Once()

	_, err := suite.service.DeleteAccount(suite.ctx, 10, 9)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "AggregateBalances", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestImportAccounts_StampsAuditFields() {
	input := []domain.Account{
		{Agencia: 10, Conta: 1001, Name: "Ana", Balance: decimal.NewFromInt(10)},
		{Agencia: 10, Conta: 1002, Name: "Bruno", Balance: decimal.NewFromInt(20)},
	}
	suite.mockRepo.On("SaveAccounts", suite.ctx, mock.MatchedBy(func(accs []domain.Account) bool {
		return len(accs) == 2 && accs[0].CreatedAt.Equal(fixedNow) && accs[1].LastUpdatedAt.Equal(fixedNow)
	})).Return(int64(2), nil).Once()

	n, err := suite.service.ImportAccounts(suite.ctx, input)

	suite.Require().NoError(err)
	suite.EqualValues(2, n)
	suite.True(input[0].CreatedAt.IsZero(), "input slice must not be mutated")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestImportAccounts_RejectsDuplicatesInBatch() {
	_, err := suite.service.ImportAccounts(suite.ctx, []domain.Account{
		{Agencia: 10, Conta: 1001, Name: "Ana"},
		{Agencia: 10, Conta: 1001, Name: "Ana de novo"},
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccounts", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestImportAccounts_PropagatesDuplicateFromStore() {
	suite.mockRepo.On("SaveAccounts", suite.ctx, mock.Anything).Return(int64(0), apperrors.ErrDuplicate).Once()

	_, err := suite.service.ImportAccounts(suite.ctx, []domain.Account{{Agencia: 1, Conta: 1, Name: "X"}})

	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicate)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
