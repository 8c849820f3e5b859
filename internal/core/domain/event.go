package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEventType names a committed balance mutation.
type LedgerEventType string

const (
	EventDeposit   LedgerEventType = "DEPOSIT"
	EventWithdraw  LedgerEventType = "WITHDRAW"
	EventTransfer  LedgerEventType = "TRANSFER"
	EventPromotion LedgerEventType = "PROMOTION"
)

// LedgerEvent is emitted after a mutation has been committed to the store.
type LedgerEvent struct {
	EventID      string          `json:"eventId"`
	Type         LedgerEventType `json:"type"`
	Agencia      int             `json:"agencia"`
	Conta        int             `json:"conta"`
	Amount       decimal.Decimal `json:"amount"`
	Fee          decimal.Decimal `json:"fee"`
	BalanceAfter decimal.Decimal `json:"balanceAfter"`
	// Counterpart is the destination account of a transfer, or the previous branch of a promotion.
	Counterpart *int      `json:"counterpart,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// RoutingKey returns the topic routing key for the event, e.g. "bank.operations.deposit".
func (e LedgerEvent) RoutingKey() string {
	switch e.Type {
	case EventDeposit:
		return "bank.operations.deposit"
	case EventWithdraw:
		return "bank.operations.withdraw"
	case EventTransfer:
		return "bank.operations.transfer.completed"
	case EventPromotion:
		return "bank.operations.promotion"
	default:
		return "bank.operations.unknown"
	}
}
