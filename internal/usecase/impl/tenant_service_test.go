package impl

import (
	"context"
	"testing"

	"returnwiz/internal/domain/entity"
	domainerrors "returnwiz/internal/domain/errors"
	"returnwiz/internal/domain/repository"
	mockRepo "returnwiz/internal/mocks/repository"
	mockSvc "returnwiz/internal/mocks/service"
	"returnwiz/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// tenantServiceFixtures holds all test dependencies for tenant service tests.
type tenantServiceFixtures struct {
	service    usecase.TenantUsecase
	txManager  *mockRepo.MockTransactionManager
	tenantRepo *mockRepo.MockTenantRepository
	hasher     *mockSvc.MockPasswordHasher
}

func createTestTenantService(t *testing.T) tenantServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	tenantRepo := mockRepo.NewMockTenantRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewTenantService(TenantServiceParams{
		TxManager:  txManager,
		TenantRepo: tenantRepo,
		Hasher:     hasher,
		Logger:     newDiscardLogger(),
	})

	return tenantServiceFixtures{
		service:    service,
		txManager:  txManager,
		tenantRepo: tenantRepo,
		hasher:     hasher,
	}
}

func TestTenantService_RegisterTenant_Success(t *testing.T) {
	fixtures := createTestTenantService(t)

	ctx := context.Background()
	input := usecase.RegisterTenantInput{
		Name:     "Example Shop",
		Email:    "owner@shop.example",
		Password: "Password123!",
	}

	fixtures.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTenantRepo := mockRepo.NewMockTenantRepository(t)

			mockFactory.EXPECT().TenantRepo().Return(mockTenantRepo)

			mockTenantRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrTenantNotFound)

			mockTenantRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Tenant")).
				Run(func(ctx context.Context, tenant *entity.Tenant) {
					tenant.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fixtures.service.RegisterTenant(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.Tenant.Email)
	assert.Equal(t, input.Name, output.Tenant.ShopName)
	assert.Equal(t, "hashed_password", output.Tenant.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.Tenant.ID)
}

func TestTenantService_RegisterTenant_DuplicateEmail(t *testing.T) {
	fixtures := createTestTenantService(t)

	ctx := context.Background()
	input := usecase.RegisterTenantInput{
		Name:     "Copycat Shop",
		Email:    "taken@shop.example",
		Password: "Password123!",
	}

	fixtures.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTenantRepo := mockRepo.NewMockTenantRepository(t)

			mockFactory.EXPECT().TenantRepo().Return(mockTenantRepo)

			mockTenantRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.Tenant{ID: uuid.New(), Email: input.Email}, nil)

			return fn(mockFactory)
		})

	output, err := fixtures.service.RegisterTenant(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTenantAlreadyExists)
}

func TestTenantService_RegisterTenant_HashFailure(t *testing.T) {
	fixtures := createTestTenantService(t)

	ctx := context.Background()
	input := usecase.RegisterTenantInput{
		Name:     "Example Shop",
		Email:    "owner@shop.example",
		Password: "Password123!",
	}

	fixtures.hasher.EXPECT().Hash(input.Password).Return("", assert.AnError)

	output, err := fixtures.service.RegisterTenant(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestTenantService_Login_Success(t *testing.T) {
	fixtures := createTestTenantService(t)

	ctx := context.Background()
	tenant := &entity.Tenant{
		ID:           uuid.New(),
		Email:        "owner@shop.example",
		ShopName:     "Example Shop",
		PasswordHash: "hashed_password",
	}

	fixtures.tenantRepo.EXPECT().
		FindByEmail(ctx, tenant.Email).
		Return(tenant, nil)
	fixtures.hasher.EXPECT().
		Check("Password123!", "hashed_password").
		Return(true)

	output, err := fixtures.service.Login(ctx, usecase.LoginInput{
		Email:    tenant.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, tenant.ID, output.Tenant.ID)
}

func TestTenantService_Login_FailuresAreIndistinguishable(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fixtures := createTestTenantService(t)
		ctx := context.Background()

		fixtures.tenantRepo.EXPECT().
			FindByEmail(ctx, "ghost@shop.example").
			Return(nil, repository.ErrTenantNotFound)

		_, err := fixtures.service.Login(ctx, usecase.LoginInput{
			Email:    "ghost@shop.example",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fixtures := createTestTenantService(t)
		ctx := context.Background()

		fixtures.tenantRepo.EXPECT().
			FindByEmail(ctx, "owner@shop.example").
			Return(&entity.Tenant{ID: uuid.New(), PasswordHash: "hashed_password"}, nil)
		fixtures.hasher.EXPECT().
			Check("wrong", "hashed_password").
			Return(false)

		_, err := fixtures.service.Login(ctx, usecase.LoginInput{
			Email:    "owner@shop.example",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestTenantService_ListTenants(t *testing.T) {
	fixtures := createTestTenantService(t)
	ctx := context.Background()

	tenants := []*entity.Tenant{
		{ID: uuid.New(), Email: "a@shop.example"},
		{ID: uuid.New(), Email: "b@shop.example"},
	}
	fixtures.tenantRepo.EXPECT().List(ctx).Return(tenants, nil)

	got, err := fixtures.service.ListTenants(ctx)

	require.NoError(t, err)
	assert.Equal(t, tenants, got)
}
