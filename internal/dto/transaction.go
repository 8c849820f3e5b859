package dto

import (
	"github.com/SscSPs/my_bank_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MovementRequest is the body of deposit and withdraw calls.
type MovementRequest struct {
	Agencia *int             `json:"agencia" binding:"required"`
	Conta   *int             `json:"conta" binding:"required"`
	Value   *decimal.Decimal `json:"value" binding:"required" swaggertype:"number"`
}

// TransferRequest is the body of a transfer. Accounts are identified by number only.
type TransferRequest struct {
	Origem  *int             `json:"origem" binding:"required"`
	Destino *int             `json:"destino" binding:"required"`
	Value   *decimal.Decimal `json:"value" binding:"required" swaggertype:"number"`
}

// TransferResponse reports both balances after a transfer.
type TransferResponse struct {
	SaldoOrigem  decimal.Decimal `json:"saldoOrigem" swaggertype:"number"`
	SaldoDestino decimal.Decimal `json:"saldoDestino" swaggertype:"number"`
}

// ToTransferResponse converts a domain.TransferResult to TransferResponse DTO
func ToTransferResponse(res *domain.TransferResult) TransferResponse {
	return TransferResponse{
		SaldoOrigem:  res.Source.Balance,
		SaldoDestino: res.Destination.Balance,
	}
}
