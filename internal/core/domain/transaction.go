package domain

import (
	"fmt"

	"github.com/SscSPs/my_bank_api/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransferResult holds both sides of a transfer after the engine has applied it.
type TransferResult struct {
	Source      Account
	Destination Account
	Fee         decimal.Decimal
}

// Deposit credits amount to the account. The amount is not sign-checked.
func Deposit(account Account, amount decimal.Decimal) Account {
	account.Balance = account.Balance.Add(amount)
	return account
}

// Withdraw debits amount plus WithdrawalFee.
//
// The sufficiency check compares the balance with the raw amount only, so a
// withdrawal that exactly empties the account is rejected while the fee can
// still push an almost-empty account below zero.
func Withdraw(account Account, amount decimal.Decimal) (Account, error) {
	if account.Balance.LessThanOrEqual(amount) {
		return account, apperrors.ErrInsufficientFunds
	}
	account.Balance = account.Balance.Sub(amount.Add(WithdrawalFee))
	return account, nil
}

// Transfer moves amount from source to destination. Transfers between
// different branches cost CrossBranchTransferFee, paid by the source.
// There is no sufficiency check; the source may go negative.
func Transfer(source, destination Account, amount decimal.Decimal) (TransferResult, error) {
	if source.Conta == destination.Conta {
		return TransferResult{}, fmt.Errorf("%w: source and destination are the same account (%d)", apperrors.ErrValidation, source.Conta)
	}

	fee := decimal.Zero
	if source.Agencia != destination.Agencia {
		fee = CrossBranchTransferFee
	}

	source.Balance = source.Balance.Sub(amount).Sub(fee)
	destination.Balance = destination.Balance.Add(amount)

	return TransferResult{Source: source, Destination: destination, Fee: fee}, nil
}
