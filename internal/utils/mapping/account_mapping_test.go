package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/my_bank_api/internal/core/domain"
	"github.com/SscSPs/my_bank_api/internal/models"
	"github.com/SscSPs/my_bank_api/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToDomainAccountSlice(t *testing.T) {
	now := time.Now().UTC()
	rows := []models.Account{
		{ID: "a", Agencia: 10, Conta: 1, Name: "Ana", Balance: decimal.NewFromInt(5), AuditFields: models.AuditFields{CreatedAt: now, LastUpdatedAt: now}},
		{ID: "b", Agencia: 47, Conta: 2, Name: "Bia", Balance: decimal.NewFromInt(7)},
	}

	got := mapping.ToDomainAccountSlice(rows)

	assert.Len(t, got, 2)
	assert.Equal(t, domain.Account{
		ID: "a", Agencia: 10, Conta: 1, Name: "Ana", Balance: decimal.NewFromInt(5),
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}, got[0])
	assert.Equal(t, rows[1], mapping.ToModelAccount(got[1]))
}
