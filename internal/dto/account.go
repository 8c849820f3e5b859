package dto

import (
	"github.com/SscSPs/my_bank_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountURI addresses one account by branch and number. Zero is a valid code.
type AccountURI struct {
	Agencia int `uri:"agencia"`
	Conta   int `uri:"conta"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID      string          `json:"id"`
	Agencia int             `json:"agencia"`
	Conta   int             `json:"conta"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance" swaggertype:"number"`
}

// BalanceResponse is returned by the balance lookup.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance" swaggertype:"number"`
}

// DeleteAccountResponse reports how many accounts remain in the branch.
type DeleteAccountResponse struct {
	Accounts int `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:      acc.ID,
		Agencia: acc.Agencia,
		Conta:   acc.Conta,
		Name:    acc.Name,
		Balance: acc.Balance,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = ToAccountResponse(&accounts[i])
	}
	return out
}

// SeedAccount is one entry of an accounts import file.
type SeedAccount struct {
	Agencia *int            `json:"agencia" binding:"required"`
	Conta   *int            `json:"conta" binding:"required"`
	Name    string          `json:"name" binding:"required"`
	Balance decimal.Decimal `json:"balance"`
}

// ToDomainAccounts converts import entries to domain accounts.
func ToDomainAccounts(entries []SeedAccount) []domain.Account {
	out := make([]domain.Account, len(entries))
	for i, e := range entries {
		out[i] = domain.Account{
			Agencia: *e.Agencia,
			Conta:   *e.Conta,
			Name:    e.Name,
			Balance: e.Balance,
		}
	}
	return out
}
