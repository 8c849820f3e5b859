package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/my_bank_api/internal/apperrors"
	"github.com/SscSPs/my_bank_api/internal/core/domain"
	portssvc "github.com/SscSPs/my_bank_api/internal/core/ports/services"
	"github.com/SscSPs/my_bank_api/internal/middleware"
	"github.com/google/uuid"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Publisher portssvc.EventPublisher
	Now       func() time.Time
}

// ServiceOption is a functional option shared by every service
type ServiceOption func(*BaseService)

// WithEventPublisher sets where committed ledger events are sent
func WithEventPublisher(publisher portssvc.EventPublisher) ServiceOption {
	return func(s *BaseService) {
		s.Publisher = publisher
	}
}

// WithClock overrides the time source used for audit timestamps and events
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.Now = now
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	base := BaseService{}
	for _, option := range options {
		option(&base)
	}
	if base.Now == nil {
		base.Now = func() time.Time { return time.Now().UTC() }
	}
	return base
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// LogFailure logs business rejections at warn level and everything else as errors.
func (s *BaseService) LogFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	if isBusinessError(err) {
		args := make([]any, 0, len(keyvals)+1)
		args = append(args, slog.String("reason", err.Error()))
		args = append(args, keyvals...)
		s.GetLogger(ctx).Warn(msg, args...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}

func isBusinessError(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrInsufficientFunds) ||
		errors.Is(err, apperrors.ErrEmptyAggregate) ||
		errors.Is(err, apperrors.ErrDuplicate)
}

// newEvent stamps a ledger event with a fresh ID and the service clock.
func (s *BaseService) newEvent(eventType domain.LedgerEventType, account domain.Account) domain.LedgerEvent {
	return domain.LedgerEvent{
		EventID:      uuid.NewString(),
		Type:         eventType,
		Agencia:      account.Agencia,
		Conta:        account.Conta,
		BalanceAfter: account.Balance,
		OccurredAt:   s.Now(),
	}
}

// emit publishes events after commit. Delivery is best effort: a failure is
// logged and never undoes the committed mutation.
func (s *BaseService) emit(ctx context.Context, events ...domain.LedgerEvent) {
	if s.Publisher == nil {
		return
	}
	for _, event := range events {
		if err := s.Publisher.PublishLedgerEvent(ctx, event); err != nil {
			s.LogError(ctx, err, "Failed to publish ledger event",
				slog.String("event_id", event.EventID),
				slog.String("type", string(event.Type)))
		}
	}
}
