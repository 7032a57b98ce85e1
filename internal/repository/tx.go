package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories bundles transaction-scoped repositories handed to a
// WithTransaction callback. All operations through them share one
// database transaction and commit or roll back together.
type Repositories struct {
	Restaurants RestaurantRepository
	Reviews     ReviewRepository
}

// TxManager runs multi-repository units of work atomically. Review
// insert plus rating recompute, and listing delete plus review
// cascade, must not partially commit.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

type txManager struct {
	db *gorm.DB
}

// NewTxManager creates a transaction manager over the shared DB handle.
func NewTxManager(db *gorm.DB) TxManager {
	return &txManager{db: db}
}

func (m *txManager) WithTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := Repositories{
			Restaurants: NewRestaurantRepository(tx),
			Reviews:     NewReviewRepository(tx),
		}
		return fn(ctx, repos)
	})
}
