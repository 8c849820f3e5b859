package services

import (
	"context"

	"github.com/SscSPs/my_bank_api/internal/core/domain"
)

// EventPublisher delivers ledger events to downstream consumers.
type EventPublisher interface {
	PublishLedgerEvent(ctx context.Context, event domain.LedgerEvent) error
}
