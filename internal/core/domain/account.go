package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// PrivateBranch is the reserved branch code for private-banking accounts.
	PrivateBranch = 99
)

var (
	// WithdrawalFee is debited on every successful withdrawal.
	WithdrawalFee = decimal.NewFromInt(1)
	// CrossBranchTransferFee is debited from the source of a transfer between branches.
	CrossBranchTransferFee = decimal.NewFromInt(8)
)

// Account represents a bank account within the core domain.
// Accounts are addressed by (Agencia, Conta); ID is assigned by the store.
type Account struct {
	ID          string          `json:"id"`
	Agencia     int             `json:"agencia"` // branch code
	Conta       int             `json:"conta"`   // account number, unique across branches for transfers
	Name        string          `json:"name"`
	Balance     decimal.Decimal `json:"balance"`
	AuditFields                 // Embed CreatedAt, LastUpdatedAt
}

// Key returns the "agencia/conta" pair used in logs and events.
func (a Account) Key() string {
	return fmt.Sprintf("%d/%d", a.Agencia, a.Conta)
}

// IsPrivate reports whether the account was promoted to the private-banking tier.
func (a Account) IsPrivate() bool {
	return a.Agencia == PrivateBranch
}
