package impl

import (
	"context"
	"regexp"
	"sync"
	"testing"

	"returnwiz/internal/domain/entity"
	"returnwiz/internal/infra/persistence/postgres"
	"returnwiz/internal/infra/shipping"
	"returnwiz/internal/usecase"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newIntegrationService wires the return service against a real in-memory
// database so the full path from usecase to SQL is covered. A single pooled
// connection keeps concurrent goroutines on the same store.
func newIntegrationService(t *testing.T) (usecase.ReturnUsecase, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgres.Migrate(db))

	cfg := newTestConfig(true, false)
	svc := NewReturnService(ReturnServiceParams{
		TxManager:    postgres.NewTransactionManager(db),
		TenantRepo:   postgres.NewTenantRepository(db),
		ReturnRepo:   postgres.NewReturnRepository(db),
		OrderLookup:  nil,
		TrackingGen:  shipping.NewTrackingGenerator(cfg),
		LabelService: shipping.NewQRLabelService(cfg),
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return svc, db
}

func TestReturnService_CreateReturn_EndToEnd(t *testing.T) {
	svc, db := newIntegrationService(t)
	ctx := context.Background()

	output, err := svc.CreateReturn(ctx, usecase.CreateReturnInput{
		OrderID:       "gid://shop/Order/1001",
		OrderNumber:   "1001",
		CustomerEmail: "a@b.com",
		Items: []usecase.ReturnItemInput{
			{LineItemID: "li_1", ProductName: "Basic T-shirt", Quantity: 1, ReasonCode: "WRONG_SIZE"},
			{LineItemID: "li_2", ProductName: "Snapback Cap", Quantity: 0, ReasonCode: "DAMAGED"},
		},
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^RW-[0-9A-F]{32}$`), output.TrackingNumber)
	assert.Equal(t, entity.BootstrapTenantName, output.TenantUsed)

	orders, err := postgres.NewReturnRepository(db).ListByTenantEmail(ctx, entity.BootstrapTenantEmail)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, entity.ReturnStatusCreated, orders[0].Status)
	assert.NotEmpty(t, orders[0].QRCodeURL)
	require.Len(t, orders[0].Items, 1, "the zero-quantity line never reaches the database")
	assert.Equal(t, "Basic T-shirt", orders[0].Items[0].ProductName)
}

func TestReturnService_CreateReturn_ConcurrentBootstrapYieldsOneTenant(t *testing.T) {
	svc, db := newIntegrationService(t)
	ctx := context.Background()

	const workers = 16

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.CreateReturn(ctx, usecase.CreateReturnInput{
				OrderNumber:   "1001",
				CustomerEmail: "a@b.com",
				Items: []usecase.ReturnItemInput{
					{LineItemID: "li_1", ProductName: "Basic T-shirt", Quantity: 1},
				},
			})
		}()
	}
	wg.Wait()

	for i, err := range errs {
		require.NoErrorf(t, err, "worker %d", i)
	}

	tenants, err := postgres.NewTenantRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, tenants, 1, "every concurrent filing must land on one bootstrap tenant")
	assert.Equal(t, entity.BootstrapTenantEmail, tenants[0].Email)

	orders, err := postgres.NewReturnRepository(db).ListByTenantEmail(ctx, entity.BootstrapTenantEmail)
	require.NoError(t, err)
	assert.Len(t, orders, workers)
}
