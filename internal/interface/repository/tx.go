package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"travelbooking-service/internal/domain/entity"
)

// txKey is the context key for storing the active transaction
type txKey struct{}

// ContextWithTx returns a new context with the GORM transaction attached
func ContextWithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromContext retrieves the GORM transaction from context, or nil when
// no transaction is present
func TxFromContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return nil
}

// dbFrom resolves the connection for a call: the transaction carried by the
// context when inside a unit of work, the fallback pool otherwise.
func dbFrom(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx := TxFromContext(ctx); tx != nil {
		return tx.WithContext(ctx)
	}
	return fallback.WithContext(ctx)
}

// GormTransactor runs a unit of work inside a single database transaction.
// The transaction is injected into the context so repositories picked up by
// the work function share it.
type GormTransactor struct {
	db *gorm.DB
}

// NewGormTransactor creates a new GORM transactor
func NewGormTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

// WithinTransaction executes fn inside one transaction, committing on nil
// and rolling back on error.
func (t *GormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ContextWithTx(ctx, tx))
	})
}

// mapError converts GORM errors into the domain error taxonomy. Absence is a
// valid outcome and unique-index rejections are the store's final word on
// natural-key uniqueness.
func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return entity.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return entity.ErrDuplicateKey
	default:
		return err
	}
}
