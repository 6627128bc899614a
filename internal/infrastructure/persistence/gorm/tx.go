package gorm

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// TxManager implements the outbound transaction interface on GORM.
// The transactional handle travels in the context so the repositories
// join the transaction without changing their signatures.
type TxManager struct {
	db *gorm.DB
}

// NewTxManager creates a new transaction manager
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction runs fn inside a database transaction. Repositories called
// with the ctx that fn receives operate on the transactional handle.
func (t *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFromContext returns the transactional handle when one is active,
// otherwise the base connection.
func dbFromContext(ctx context.Context, base *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return base.WithContext(ctx)
}
