package repositories

import (
	"context"
)

// TransactionManager runs a unit of work inside a single store transaction.
type TransactionManager interface {
	// WithTransaction executes fn within a transaction carried by the context
	// passed to fn. The transaction is committed when fn returns nil and rolled
	// back otherwise.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
