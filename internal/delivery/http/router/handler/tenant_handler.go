package handler

import (
	"log/slog"
	"net/http"
	"time"

	"returnwiz/internal/delivery/http/response"
	"returnwiz/internal/domain/entity"
	"returnwiz/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TenantHandler holds dependencies for tenant-related handlers.
type TenantHandler struct {
	uc     usecase.TenantUsecase
	logger *slog.Logger
}

// NewTenantHandler is the constructor for TenantHandler, injected by Fx.
func NewTenantHandler(uc usecase.TenantUsecase, logger *slog.Logger) *TenantHandler {
	return &TenantHandler{
		uc:     uc,
		logger: logger,
	}
}

// --- Request DTOs ---

type registerTenantRequest struct {
	Name                      string `json:"name" validate:"required"`
	Email                     string `json:"email" validate:"required,email"`
	Password                  string `json:"password" validate:"required,min=8"`
	StorefrontDomain          string `json:"storefront_domain"`
	StorefrontToken           string `json:"storefront_token"`
	CompanyRegistrationNumber string `json:"company_registration_number"`
	CarrierCustomerNumber     string `json:"carrier_customer_number"`
	CarrierAPIKey             string `json:"carrier_api_key"`
	CarrierAPIUser            string `json:"carrier_api_user"`
	LogoURL                   string `json:"logo_url"`
	BannerURL                 string `json:"banner_url"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Response DTOs ---

type registerTenantResponse struct {
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
}

type loginResponse struct {
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// tenantResponse is the public view of a tenant; credentials and carrier
// secrets never leave the service.
type tenantResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	StorefrontDomain string    `json:"storefront_domain"`
	LogoURL          string    `json:"logo_url"`
	BannerURL        string    `json:"banner_url"`
	CreatedAt        time.Time `json:"created_at"`
}

// Register handles the tenant registration request.
func (h *TenantHandler) Register(c echo.Context) error {
	var input registerTenantRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterTenant(c.Request().Context(), usecase.RegisterTenantInput{
		Name:                      input.Name,
		Email:                     input.Email,
		Password:                  input.Password,
		StorefrontDomain:          input.StorefrontDomain,
		StorefrontToken:           input.StorefrontToken,
		CompanyRegistrationNumber: input.CompanyRegistrationNumber,
		CarrierCustomerNumber:     input.CarrierCustomerNumber,
		CarrierAPIKey:             input.CarrierAPIKey,
		CarrierAPIUser:            input.CarrierAPIUser,
		LogoURL:                   input.LogoURL,
		BannerURL:                 input.BannerURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, registerTenantResponse{
		TenantID: output.Tenant.ID.String(),
		Name:     output.Tenant.ShopName,
	}, "Shop registered successfully")
}

// Login handles the tenant login request.
func (h *TenantHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		TenantID: output.Tenant.ID.String(),
		Name:     output.Tenant.ShopName,
		Email:    output.Tenant.Email,
	}, "Login successful")
}

// List handles listing all registered tenants.
func (h *TenantHandler) List(c echo.Context) error {
	tenants, err := h.uc.ListTenants(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTenantResponses(tenants), "Tenants retrieved")
}

// --- Mapper Functions ---

func toTenantResponses(tenants []*entity.Tenant) []tenantResponse {
	resp := make([]tenantResponse, 0, len(tenants))
	for _, tenant := range tenants {
		resp = append(resp, tenantResponse{
			ID:               tenant.ID.String(),
			Name:             tenant.ShopName,
			Email:            tenant.Email,
			StorefrontDomain: tenant.StorefrontDomain,
			LogoURL:          tenant.LogoURL,
			BannerURL:        tenant.BannerURL,
			CreatedAt:        tenant.CreatedAt,
		})
	}

	return resp
}
