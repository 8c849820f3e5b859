package domain_test

import (
	"testing"

	"github.com/SscSPs/my_bank_api/internal/apperrors"
	"github.com/SscSPs/my_bank_api/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	accounts := []domain.Account{
		{Agencia: 1, Conta: 1, Balance: dec("10")},
		{Agencia: 1, Conta: 2, Balance: dec("20")},
		{Agencia: 1, Conta: 3, Balance: dec("30")},
	}

	agg, err := domain.Aggregate(accounts)

	require.NoError(t, err)
	assert.True(t, dec("60").Equal(agg.Sum))
	assert.Equal(t, 3, agg.Count)
	assert.True(t, dec("20").Equal(agg.Average))
}

func TestAggregate_Empty(t *testing.T) {
	_, err := domain.Aggregate(nil)

	assert.ErrorIs(t, err, apperrors.ErrEmptyAggregate)
}

func TestSelectPromotions(t *testing.T) {
	accounts := []domain.Account{
		{ID: "a", Agencia: 1, Conta: 11, Name: "A", Balance: dec("10")},
		{ID: "b", Agencia: 1, Conta: 12, Name: "B", Balance: dec("20")},
		{ID: "c", Agencia: 2, Conta: 21, Name: "C", Balance: dec("5")},
		{ID: "d", Agencia: 2, Conta: 22, Name: "D", Balance: dec("50")},
		{ID: "p", Agencia: domain.PrivateBranch, Conta: 99, Name: "P", Balance: dec("1000")},
	}

	promoted := domain.SelectPromotions(accounts)

	require.Len(t, promoted, 2)
	assert.Equal(t, "b", promoted[0].ID)
	assert.Equal(t, "d", promoted[1].ID)
	for _, acc := range promoted {
		assert.Equal(t, domain.PrivateBranch, acc.Agencia)
	}
	// Input is not mutated.
	assert.Equal(t, 1, accounts[1].Agencia)
}

func TestSelectPromotions_RepeatedSweepIsCumulative(t *testing.T) {
	accounts := []domain.Account{
		{ID: "a", Agencia: 1, Conta: 11, Balance: dec("10")},
		{ID: "b", Agencia: 1, Conta: 12, Balance: dec("20")},
		{ID: "c", Agencia: 2, Conta: 21, Balance: dec("5")},
		{ID: "d", Agencia: 2, Conta: 22, Balance: dec("50")},
	}

	first := domain.SelectPromotions(accounts)
	applied := applyPromotions(accounts, first)
	second := domain.SelectPromotions(applied)

	require.Len(t, second, 2)
	assert.Equal(t, "a", second[0].ID)
	assert.Equal(t, "c", second[1].ID)
}

func TestSelectPromotions_TieBreaksByName(t *testing.T) {
	accounts := []domain.Account{
		{ID: "z", Agencia: 3, Conta: 2, Name: "Zeca", Balance: dec("70")},
		{ID: "m", Agencia: 3, Conta: 1, Name: "Maria", Balance: dec("70")},
	}

	promoted := domain.SelectPromotions(accounts)

	require.Len(t, promoted, 1)
	assert.Equal(t, "m", promoted[0].ID)
}

func applyPromotions(accounts, promoted []domain.Account) []domain.Account {
	byID := make(map[string]domain.Account, len(promoted))
	for _, p := range promoted {
		byID[p.ID] = p
	}
	out := make([]domain.Account, len(accounts))
	for i, acc := range accounts {
		if p, ok := byID[acc.ID]; ok {
			acc = p
		}
		out[i] = acc
	}
	return out
}
