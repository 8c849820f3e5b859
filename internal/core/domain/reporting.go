package domain

import (
	"sort"

	"github.com/SscSPs/my_bank_api/internal/apperrors"
	"github.com/shopspring/decimal"
)

// BalanceAggregate summarises the balances of a set of accounts.
type BalanceAggregate struct {
	Sum     decimal.Decimal `json:"sum"`
	Count   int             `json:"count"`
	Average decimal.Decimal `json:"average"`
}

// averagePrecision is the number of decimal places kept when dividing.
const averagePrecision = 8

// Aggregate folds the balances of accounts into a BalanceAggregate.
func Aggregate(accounts []Account) (BalanceAggregate, error) {
	if len(accounts) == 0 {
		return BalanceAggregate{}, apperrors.ErrEmptyAggregate
	}

	sum := decimal.Zero
	for _, acc := range accounts {
		sum = sum.Add(acc.Balance)
	}
	count := decimal.NewFromInt(int64(len(accounts)))

	return BalanceAggregate{
		Sum:     sum,
		Count:   len(accounts),
		Average: sum.DivRound(count, averagePrecision),
	}, nil
}

// SelectPromotions picks, per branch, the account with the highest balance
// and returns copies of those accounts moved to PrivateBranch. Accounts
// already in the private tier are ignored. Ties are broken by name, then by
// account number, so the result does not depend on input order.
func SelectPromotions(accounts []Account) []Account {
	top := make(map[int]Account)
	for _, acc := range accounts {
		if acc.IsPrivate() {
			continue
		}
		current, ok := top[acc.Agencia]
		if !ok || ranksAbove(acc, current) {
			top[acc.Agencia] = acc
		}
	}

	branches := make([]int, 0, len(top))
	for agencia := range top {
		branches = append(branches, agencia)
	}
	sort.Ints(branches)

	promoted := make([]Account, 0, len(branches))
	for _, agencia := range branches {
		acc := top[agencia]
		acc.Agencia = PrivateBranch
		promoted = append(promoted, acc)
	}
	return promoted
}

func ranksAbove(a, b Account) bool {
	if cmp := a.Balance.Cmp(b.Balance); cmp != 0 {
		return cmp > 0
	}
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.Conta < b.Conta
}
