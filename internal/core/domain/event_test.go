package domain_test

import (
	"testing"

	"github.com/SscSPs/my_bank_api/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestLedgerEvent_RoutingKey(t *testing.T) {
	tests := []struct {
		eventType domain.LedgerEventType
		want      string
	}{
		{domain.EventDeposit, "bank.operations.deposit"},
		{domain.EventWithdraw, "bank.operations.withdraw"},
		{domain.EventTransfer, "bank.operations.transfer.completed"},
		{domain.EventPromotion, "bank.operations.promotion"},
		{domain.LedgerEventType("OTHER"), "bank.operations.unknown"},
	}

	for _, tt := range tests {
		t.Run(string(tt.eventType), func(t *testing.T) {
			assert.Equal(t, tt.want, domain.LedgerEvent{Type: tt.eventType}.RoutingKey())
		})
	}
}
