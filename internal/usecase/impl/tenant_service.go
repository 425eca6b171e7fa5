// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "returnwiz/internal/delivery/context"
	"returnwiz/internal/domain/entity"
	domainerrors "returnwiz/internal/domain/errors"
	"returnwiz/internal/domain/repository"
	"returnwiz/internal/domain/service"
	"returnwiz/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tenantService implements the TenantUsecase interface.
type tenantService struct {
	txManager  repository.TransactionManager
	tenantRepo repository.TenantRepository
	hasher     service.PasswordHasher
	logger     *slog.Logger
}

// TenantServiceParams holds dependencies for tenantService, injected by Fx.
type TenantServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	TenantRepo repository.TenantRepository
	Hasher     service.PasswordHasher
	Logger     *slog.Logger
}

// NewTenantService is the constructor for tenantService. It receives all dependencies as interfaces.
func NewTenantService(params TenantServiceParams) usecase.TenantUsecase {
	return &tenantService{
		txManager:  params.TxManager,
		tenantRepo: params.TenantRepo,
		hasher:     params.Hasher,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *tenantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterTenant creates a new tenant account. The password is hashed before
// the transaction starts so the write path holds the transaction only for the
// two database statements.
func (srv *tenantService) RegisterTenant(ctx context.Context, input usecase.RegisterTenantInput) (*usecase.RegisterTenantOutput, error) {
	srv.log(ctx).Info("Starting tenant registration", slog.String("email", input.Email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash tenant password")
	}

	tenant := &entity.Tenant{
		Email:                     input.Email,
		ShopName:                  input.Name,
		PasswordHash:              passwordHash,
		StorefrontDomain:          input.StorefrontDomain,
		StorefrontToken:           input.StorefrontToken,
		CompanyRegistrationNumber: input.CompanyRegistrationNumber,
		CarrierCustomerNumber:     input.CarrierCustomerNumber,
		CarrierAPIKey:             input.CarrierAPIKey,
		CarrierAPIUser:            input.CarrierAPIUser,
		LogoURL:                   input.LogoURL,
		BannerURL:                 input.BannerURL,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tenantRepo := repoFactory.TenantRepo()

		// Friendly pre-check; the unique email constraint still closes the
		// race between two concurrent registrations.
		_, findErr := tenantRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return domainerrors.ErrTenantAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(findErr, repository.ErrTenantNotFound) {
			return errors.Wrap(findErr, "failed to check for existing tenant")
		}

		return tenantRepo.Create(ctx, tenant)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Tenant registered",
		slog.String("tenantID", tenant.ID.String()),
		slog.String("email", tenant.Email),
	)

	return &usecase.RegisterTenantOutput{Tenant: tenant}, nil
}

// Login verifies a tenant's credentials. Unknown email and wrong password
// both answer ErrInvalidCredentials so the endpoint cannot be used to probe
// which shops are registered.
func (srv *tenantService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	tenant, err := srv.tenantRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to load tenant for login")
	}

	if !srv.hasher.Check(input.Password, tenant.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	srv.log(ctx).Info("Tenant logged in", slog.String("tenantID", tenant.ID.String()))

	return &usecase.LoginOutput{Tenant: tenant}, nil
}

// ListTenants returns every registered tenant. Callers are responsible for
// stripping secrets before the result leaves the process.
func (srv *tenantService) ListTenants(ctx context.Context) ([]*entity.Tenant, error) {
	return srv.tenantRepo.List(ctx)
}
