// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"returnwiz/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterTenantInput defines the data required to register a new tenant.
// Everything beyond name, email and password is optional onboarding detail.
type RegisterTenantInput struct {
	Name                      string
	Email                     string
	Password                  string
	StorefrontDomain          string
	StorefrontToken           string
	CompanyRegistrationNumber string
	CarrierCustomerNumber     string
	CarrierAPIKey             string
	CarrierAPIUser            string
	LogoURL                   string
	BannerURL                 string
}

// LoginInput defines the data required for a tenant to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterTenantOutput returns the newly created tenant.
type RegisterTenantOutput struct {
	Tenant *entity.Tenant
}

// LoginOutput returns the authenticated tenant after a successful login.
type LoginOutput struct {
	Tenant *entity.Tenant
}

// TenantUsecase defines the interface for tenant-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type TenantUsecase interface {
	RegisterTenant(ctx context.Context, input RegisterTenantInput) (*RegisterTenantOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	ListTenants(ctx context.Context) ([]*entity.Tenant, error)
}
