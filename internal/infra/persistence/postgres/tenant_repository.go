package postgres

import (
	"context"

	"returnwiz/internal/domain/entity"
	domainerrors "returnwiz/internal/domain/errors"
	"returnwiz/internal/domain/repository"
	"returnwiz/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tenantRepository implements the repository.TenantRepository interface using GORM.
type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository is the constructor for tenantRepository.
func NewTenantRepository(db *gorm.DB) repository.TenantRepository {
	return &tenantRepository{
		db: db,
	}
}

// FindByEmail retrieves a single tenant by their unique email address.
func (repo *tenantRepository) FindByEmail(ctx context.Context, email string) (*entity.Tenant, error) {
	var tenantM model.TenantModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&tenantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant by email")
	}

	return toTenantDomain(&tenantM), nil
}

// FindFirst retrieves an arbitrary tenant, or ErrTenantNotFound on an empty store.
func (repo *tenantRepository) FindFirst(ctx context.Context) (*entity.Tenant, error) {
	var tenantM model.TenantModel

	if err := repo.db.WithContext(ctx).
		First(&tenantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find first tenant")
	}

	return toTenantDomain(&tenantM), nil
}

// Create persists a new tenant entity.
func (repo *tenantRepository) Create(ctx context.Context, tenant *entity.Tenant) error {
	tenantM := fromTenantDomain(tenant)

	if err := repo.db.WithContext(ctx).Create(tenantM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTenantAlreadyExists.WrapMessage("email or storefront domain already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required tenant information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create tenant")
	}

	// Update the entity with generated values
	tenant.ID = tenantM.ID
	tenant.CreatedAt = tenantM.CreatedAt

	return nil
}

// List retrieves all tenants, oldest first.
func (repo *tenantRepository) List(ctx context.Context) ([]*entity.Tenant, error) {
	var tenantModels []*model.TenantModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&tenantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tenants")
	}

	tenants := make([]*entity.Tenant, 0, len(tenantModels))
	for _, tenantM := range tenantModels {
		tenants = append(tenants, toTenantDomain(tenantM))
	}

	return tenants, nil
}

// --- Mapper Functions ---

// toTenantDomain converts a GORM TenantModel to a domain Tenant entity.
func toTenantDomain(data *model.TenantModel) *entity.Tenant {
	if data == nil {
		return nil
	}

	storefrontDomain := ""
	if data.StorefrontDomain != nil {
		storefrontDomain = *data.StorefrontDomain
	}

	return &entity.Tenant{
		ID:                        data.ID,
		Email:                     data.Email,
		ShopName:                  data.ShopName,
		PasswordHash:              data.PasswordHash,
		StorefrontDomain:          storefrontDomain,
		StorefrontToken:           data.StorefrontToken,
		CompanyRegistrationNumber: data.CompanyRegistrationNumber,
		CarrierCustomerNumber:     data.CarrierCustomerNumber,
		CarrierAPIKey:             data.CarrierAPIKey,
		CarrierAPIUser:            data.CarrierAPIUser,
		LogoURL:                   data.LogoURL,
		BannerURL:                 data.BannerURL,
		CreatedAt:                 data.CreatedAt,
	}
}

// fromTenantDomain converts a domain Tenant entity to a GORM TenantModel for persistence.
func fromTenantDomain(data *entity.Tenant) *model.TenantModel {
	if data == nil {
		return nil
	}

	var storefrontDomain *string
	if data.StorefrontDomain != "" {
		domain := data.StorefrontDomain
		storefrontDomain = &domain
	}

	return &model.TenantModel{
		ID:                        data.ID,
		Email:                     data.Email,
		ShopName:                  data.ShopName,
		PasswordHash:              data.PasswordHash,
		StorefrontDomain:          storefrontDomain,
		StorefrontToken:           data.StorefrontToken,
		CompanyRegistrationNumber: data.CompanyRegistrationNumber,
		CarrierCustomerNumber:     data.CarrierCustomerNumber,
		CarrierAPIKey:             data.CarrierAPIKey,
		CarrierAPIUser:            data.CarrierAPIUser,
		LogoURL:                   data.LogoURL,
		BannerURL:                 data.BannerURL,
	}
}
