package repository

import "context"

// Transactor runs a unit of work atomically. Create, update and delete flows
// span validation reads and the subsequent write inside one transaction so a
// failed write rolls back any partial state.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
