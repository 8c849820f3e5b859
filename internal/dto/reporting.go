package dto

import (
	"github.com/SscSPs/my_bank_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BranchURI addresses a branch.
type BranchURI struct {
	Agencia int `uri:"agencia"`
}

// QuantityURI carries the size of a ranking.
type QuantityURI struct {
	Quantity int `uri:"quantity" binding:"required,min=1"`
}

// AverageResponse is the mean balance of a branch.
type AverageResponse struct {
	Average decimal.Decimal `json:"average" swaggertype:"number"`
}

// BranchSummaryResponse aggregates the balances of a branch.
type BranchSummaryResponse struct {
	Sum     decimal.Decimal `json:"sum" swaggertype:"number"`
	Count   int             `json:"count"`
	Average decimal.Decimal `json:"average" swaggertype:"number"`
}

// ToBranchSummaryResponse converts a domain.BalanceAggregate to its DTO
func ToBranchSummaryResponse(agg domain.BalanceAggregate) BranchSummaryResponse {
	return BranchSummaryResponse{
		Sum:     agg.Sum,
		Count:   agg.Count,
		Average: agg.Average,
	}
}
