package postgres

import (
	"context"
	"testing"
	"time"

	"returnwiz/internal/domain/entity"
	domainerrors "returnwiz/internal/domain/errors"
	"returnwiz/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTenant(t *testing.T, repo repository.TenantRepository, email string) *entity.Tenant {
	t.Helper()

	tenant := &entity.Tenant{
		Email:        email,
		ShopName:     "Shop " + email,
		PasswordHash: "hashed",
	}
	require.NoError(t, repo.Create(context.Background(), tenant))

	return tenant
}

func buildTestReturn(tenantID uuid.UUID, trackingNumber string) *entity.ReturnOrder {
	return &entity.ReturnOrder{
		TenantID:       tenantID,
		OrderID:        "gid://shop/Order/1001",
		OrderNumber:    "1001",
		CustomerEmail:  "a@b.com",
		TrackingNumber: trackingNumber,
		Status:         entity.ReturnStatusCreated,
		Items: []*entity.ReturnItem{
			{
				LineItemID:  "li_1",
				ProductName: "Basic T-shirt",
				Quantity:    1,
				ReasonCode:  "WRONG_SIZE",
			},
			{
				LineItemID:  "li_2",
				ProductName: "Snapback Cap",
				Quantity:    2,
				ReasonCode:  "DAMAGED",
			},
		},
	}
}

func TestReturnRepository_CreateAndFindByID(t *testing.T) {
	db := newTestDB(t)
	tenantRepo := NewTenantRepository(db)
	returnRepo := NewReturnRepository(db)
	ctx := context.Background()

	tenant := createTestTenant(t, tenantRepo, "owner@shop.example")
	order := buildTestReturn(tenant.ID, "RW-AAAA1111")

	require.NoError(t, returnRepo.Create(ctx, order))
	assert.NotEmpty(t, order.ID)
	require.Len(t, order.Items, 2)
	assert.NotEmpty(t, order.Items[0].ID, "create should back-fill item IDs")
	assert.Equal(t, order.ID, order.Items[0].ReturnID)

	found, err := returnRepo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "1001", found.OrderNumber)
	assert.Equal(t, "RW-AAAA1111", found.TrackingNumber)
	assert.Equal(t, entity.ReturnStatusCreated, found.Status)
	require.Len(t, found.Items, 2)

	names := []string{found.Items[0].ProductName, found.Items[1].ProductName}
	assert.ElementsMatch(t, []string{"Basic T-shirt", "Snapback Cap"}, names)
}

func TestReturnRepository_FindByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	returnRepo := NewReturnRepository(db)

	_, err := returnRepo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrReturnNotFound)
}

func TestReturnRepository_Create_TrackingNumberConflict(t *testing.T) {
	db := newTestDB(t)
	tenantRepo := NewTenantRepository(db)
	returnRepo := NewReturnRepository(db)
	ctx := context.Background()

	tenant := createTestTenant(t, tenantRepo, "owner@shop.example")

	require.NoError(t, returnRepo.Create(ctx, buildTestReturn(tenant.ID, "RW-SAME")))

	err := returnRepo.Create(ctx, buildTestReturn(tenant.ID, "RW-SAME"))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrTrackingNumberConflict.ErrorCode(), appErr.ErrorCode())
}

func TestReturnRepository_ListByTenantEmail_ScopesToTenant(t *testing.T) {
	db := newTestDB(t)
	tenantRepo := NewTenantRepository(db)
	returnRepo := NewReturnRepository(db)
	ctx := context.Background()

	alpha := createTestTenant(t, tenantRepo, "alpha@shop.example")
	beta := createTestTenant(t, tenantRepo, "beta@shop.example")

	require.NoError(t, returnRepo.Create(ctx, buildTestReturn(alpha.ID, "RW-ALPHA1")))
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, returnRepo.Create(ctx, buildTestReturn(alpha.ID, "RW-ALPHA2")))
	require.NoError(t, returnRepo.Create(ctx, buildTestReturn(beta.ID, "RW-BETA1")))

	orders, err := returnRepo.ListByTenantEmail(ctx, "alpha@shop.example")
	require.NoError(t, err)
	require.Len(t, orders, 2, "another tenant's returns must not leak into the listing")
	assert.Equal(t, "RW-ALPHA2", orders[0].TrackingNumber, "newest return first")
	assert.Equal(t, "RW-ALPHA1", orders[1].TrackingNumber)
	require.Len(t, orders[0].Items, 2, "items are loaded with the listing")

	orders, err = returnRepo.ListByTenantEmail(ctx, "nobody@shop.example")
	require.NoError(t, err)
	assert.Empty(t, orders, "unknown tenant email yields an empty list, not an error")
}

func TestReturnRepository_ListAll(t *testing.T) {
	db := newTestDB(t)
	tenantRepo := NewTenantRepository(db)
	returnRepo := NewReturnRepository(db)
	ctx := context.Background()

	alpha := createTestTenant(t, tenantRepo, "alpha@shop.example")
	beta := createTestTenant(t, tenantRepo, "beta@shop.example")

	require.NoError(t, returnRepo.Create(ctx, buildTestReturn(alpha.ID, "RW-ALPHA1")))
	require.NoError(t, returnRepo.Create(ctx, buildTestReturn(beta.ID, "RW-BETA1")))

	orders, err := returnRepo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
