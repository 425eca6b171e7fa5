package postgres

import (
	"context"
	"testing"
	"time"

	"returnwiz/internal/domain/entity"
	domainerrors "returnwiz/internal/domain/errors"
	"returnwiz/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantRepository_CreateAndFindByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewTenantRepository(db)
	ctx := context.Background()

	tenant := &entity.Tenant{
		Email:        "owner@shop.example",
		ShopName:     "Example Shop",
		PasswordHash: "hashed",
	}

	require.NoError(t, repo.Create(ctx, tenant))
	assert.NotEmpty(t, tenant.ID, "create should back-fill the generated ID")
	assert.False(t, tenant.CreatedAt.IsZero())

	found, err := repo.FindByEmail(ctx, "owner@shop.example")
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, found.ID)
	assert.Equal(t, "Example Shop", found.ShopName)
	assert.Equal(t, "hashed", found.PasswordHash)
}

func TestTenantRepository_FindByEmail_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewTenantRepository(db)

	_, err := repo.FindByEmail(context.Background(), "missing@shop.example")
	assert.ErrorIs(t, err, repository.ErrTenantNotFound)
}

func TestTenantRepository_FindFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewTenantRepository(db)
	ctx := context.Background()

	_, err := repo.FindFirst(ctx)
	assert.ErrorIs(t, err, repository.ErrTenantNotFound, "empty store has no first tenant")

	require.NoError(t, repo.Create(ctx, &entity.Tenant{
		Email:        "first@shop.example",
		ShopName:     "First",
		PasswordHash: "hashed",
	}))

	found, err := repo.FindFirst(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first@shop.example", found.Email)
}

func TestTenantRepository_Create_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewTenantRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Tenant{
		Email:        "dup@shop.example",
		ShopName:     "Original",
		PasswordHash: "hashed",
	}))

	err := repo.Create(ctx, &entity.Tenant{
		Email:        "dup@shop.example",
		ShopName:     "Copycat",
		PasswordHash: "hashed",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrTenantAlreadyExists.ErrorCode(), appErr.ErrorCode())

	tenants, listErr := repo.List(ctx)
	require.NoError(t, listErr)
	assert.Len(t, tenants, 1, "the conflicting create must not add a row")
}

func TestTenantRepository_List_OldestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewTenantRepository(db)
	ctx := context.Background()

	for _, email := range []string{"a@shop.example", "b@shop.example"} {
		require.NoError(t, repo.Create(ctx, &entity.Tenant{
			Email:        email,
			ShopName:     email,
			PasswordHash: "hashed",
		}))
		time.Sleep(2 * time.Millisecond)
	}

	tenants, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tenants, 2)
	assert.Equal(t, "a@shop.example", tenants[0].Email)
	assert.Equal(t, "b@shop.example", tenants[1].Email)
}
