// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"returnwiz/internal/domain/entity"
)

// ErrTenantNotFound is a domain-specific error returned when a tenant is not found.
var ErrTenantNotFound = errors.New("tenant not found")

// TenantRepository defines the standard operations for tenant persistence.
// The application layer will depend on this interface, not the concrete implementation.
type TenantRepository interface {
	// FindByEmail retrieves a single tenant by their unique email address.
	FindByEmail(ctx context.Context, email string) (*entity.Tenant, error)

	// FindFirst retrieves an arbitrary existing tenant, or ErrTenantNotFound
	// when the store is empty. No ordering is guaranteed.
	FindFirst(ctx context.Context) (*entity.Tenant, error)

	// Create persists a new tenant. The email unique constraint maps to a
	// conflict error; callers must hash the password before calling this.
	Create(ctx context.Context, tenant *entity.Tenant) error

	// List retrieves all tenants. Diagnostic use only.
	List(ctx context.Context) ([]*entity.Tenant, error)
}
