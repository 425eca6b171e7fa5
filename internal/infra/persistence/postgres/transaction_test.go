package postgres

import (
	"context"
	"testing"

	"returnwiz/internal/domain/entity"
	"returnwiz/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitPersistsAllWrites(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		tenant := &entity.Tenant{
			Email:        "owner@shop.example",
			ShopName:     "Example Shop",
			PasswordHash: "hashed",
		}
		if err := factory.TenantRepo().Create(ctx, tenant); err != nil {
			return err
		}

		return factory.ReturnRepo().Create(ctx, buildTestReturn(tenant.ID, "RW-COMMIT"))
	})
	require.NoError(t, err)

	orders, err := NewReturnRepository(db).ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "RW-COMMIT", orders[0].TrackingNumber)
	assert.Len(t, orders[0].Items, 2)
}

func TestTransactionManager_RollbackDiscardsAllWrites(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	tenant := createTestTenant(t, NewTenantRepository(db), "owner@shop.example")

	boom := errors.New("boom")
	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.ReturnRepo().Create(ctx, buildTestReturn(tenant.ID, "RW-ROLLBACK")); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom, "the business error surfaces, not a rollback error")

	orders, listErr := NewReturnRepository(db).ListAll(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, orders, "a failed transaction leaves neither the return nor its items behind")

	var itemCount int64
	require.NoError(t, db.Table("return_items").Count(&itemCount).Error)
	assert.Zero(t, itemCount)
}

func TestTransactionManager_PanicRollsBackAndRepanics(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	tenant := createTestTenant(t, NewTenantRepository(db), "owner@shop.example")

	require.Panics(t, func() {
		_ = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			if err := factory.ReturnRepo().Create(ctx, buildTestReturn(tenant.ID, "RW-PANIC")); err != nil {
				return err
			}
			panic("unexpected")
		})
	})

	orders, err := NewReturnRepository(db).ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
