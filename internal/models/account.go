package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields mirrors the audit columns shared by persisted rows.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"updated_at"`
}

// Account is the row shape of the accounts table.
type Account struct {
	ID          string          `db:"id"`
	Agencia     int             `db:"agencia"`
	Conta       int             `db:"conta"`
	Name        string          `db:"name"`
	Balance     decimal.Decimal `db:"balance"`
	AuditFields                 // Embed common audit fields
}
