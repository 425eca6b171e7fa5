// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Bootstrap tenant identity, created lazily when a return is filed before
// any webshop has onboarded. The email carries a unique constraint, so two
// concurrent bootstrap attempts can never both succeed.
const (
	BootstrapTenantEmail = "demo@returnwiz.local"
	BootstrapTenantName  = "Demo Shop"
)

// Tenant is a registered webshop. It owns return orders and authenticates
// against the stored password hash.
type Tenant struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the tenant.
	Email        string    // Login identifier, unique across all tenants.
	ShopName     string    // Display name shown to end customers on receipts.
	PasswordHash string    // bcrypt hash of the tenant's password. Never a plaintext value.

	// Storefront integration (optional, filled in during onboarding).
	StorefrontDomain string // e.g. "myshop.example.com"; unique when set.
	StorefrontToken  string // Access token for the storefront API.

	// Company info.
	CompanyRegistrationNumber string

	// Shipping carrier credentials (optional).
	CarrierCustomerNumber string
	CarrierAPIKey         string
	CarrierAPIUser        string

	// Branding (optional).
	LogoURL   string
	BannerURL string

	CreatedAt time.Time // Timestamp of when this tenant was registered.
}

// IsBootstrap reports whether this tenant is the synthesized default tenant.
func (t *Tenant) IsBootstrap() bool {
	return t.Email == BootstrapTenantEmail
}
