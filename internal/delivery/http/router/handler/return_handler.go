// Package handler contains the HTTP handlers for the application.
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

// ReturnHandler holds dependencies for the return lifecycle handlers.
type ReturnHandler struct {
	uc     usecase.ReturnUsecase
	logger *slog.Logger
}

// NewReturnHandler is the constructor for ReturnHandler, injected by Fx.
func NewReturnHandler(uc usecase.ReturnUsecase, logger *slog.Logger) *ReturnHandler {
	return &ReturnHandler{
		uc:     uc,
		logger: logger,
	}
}

// --- Request DTOs ---

type searchOrderRequest struct {
	OrderNumber string `json:"order_number" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
}

type createReturnItemRequest struct {
	ID          string `json:"id" validate:"required"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Reason      string `json:"reason"`
}

type createReturnRequest struct {
	OrderID     string                    `json:"order_id"`
	OrderNumber string                    `json:"order_number" validate:"required"`
	Email       string                    `json:"email" validate:"required,email"`
	Items       []createReturnItemRequest `json:"items"`
}

// --- Response DTOs ---

type orderLineItemResponse struct {
	ID          string `json:"id"`
	ProductName string `json:"product_name"`
	VariantName string `json:"variant_name"`
	ImageURL    string `json:"image_url"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
}

type orderResponse struct {
	OrderID       string                  `json:"order_id"`
	OrderNumber   string                  `json:"order_number"`
	CustomerEmail string                  `json:"customer_email"`
	Currency      string                  `json:"currency"`
	Items         []orderLineItemResponse `json:"items"`
}

type createReturnResponse struct {
	ReturnID       string `json:"return_id"`
	TrackingNumber string `json:"tracking_number"`
	TenantUsed     string `json:"tenant_used"`
}

type returnItemResponse struct {
	ID          string `json:"id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	ReasonCode  string `json:"reason_code"`
}

type returnOrderResponse struct {
	ID             string               `json:"id"`
	OrderNumber    string               `json:"order_number"`
	CustomerEmail  string               `json:"customer_email"`
	TrackingNumber string               `json:"tracking_number"`
	Status         string               `json:"status"`
	CreatedAt      time.Time            `json:"created_at"`
	Items          []returnItemResponse `json:"items"`
}

// SearchOrder handles the order lookup a customer starts a return with.
func (h *ReturnHandler) SearchOrder(c echo.Context) error {
	var input searchOrderRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order search input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	snapshot, err := h.uc.SearchOrder(c.Request().Context(), usecase.SearchOrderInput{
		OrderNumber: input.OrderNumber,
		Email:       input.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(snapshot), "Order found")
}

// CreateReturn handles filing a new return order.
func (h *ReturnHandler) CreateReturn(c echo.Context) error {
	var input createReturnRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid return input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	items := make([]usecase.ReturnItemInput, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, usecase.ReturnItemInput{
			LineItemID:  item.ID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			ReasonCode:  item.Reason,
		})
	}

	output, err := h.uc.CreateReturn(c.Request().Context(), usecase.CreateReturnInput{
		OrderID:       input.OrderID,
		OrderNumber:   input.OrderNumber,
		CustomerEmail: input.Email,
		Items:         items,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, createReturnResponse{
		ReturnID:       output.ReturnID,
		TrackingNumber: output.TrackingNumber,
		TenantUsed:     output.TenantUsed,
	}, "Return created successfully")
}

// ListReturns handles the merchant dashboard listing, scoped by the
// shopEmail query parameter.
func (h *ReturnHandler) ListReturns(c echo.Context) error {
	orders, err := h.uc.ListReturns(c.Request().Context(), usecase.ListReturnsInput{
		ShopEmail: c.QueryParam("shopEmail"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReturnOrderResponses(orders), "Returns retrieved")
}

// --- Mapper Functions ---

func toOrderResponse(snapshot *entity.OrderSnapshot) orderResponse {
	items := make([]orderLineItemResponse, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		items = append(items, orderLineItemResponse{
			ID:          item.ID,
			ProductName: item.ProductName,
			VariantName: item.VariantName,
			ImageURL:    item.ImageURL,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	return orderResponse{
		OrderID:       snapshot.OrderID,
		OrderNumber:   snapshot.OrderNumber,
		CustomerEmail: snapshot.CustomerEmail,
		Currency:      snapshot.Currency,
		Items:         items,
	}
}

func toReturnOrderResponses(orders []*entity.ReturnOrder) []returnOrderResponse {
	resp := make([]returnOrderResponse, 0, len(orders))
	for _, order := range orders {
		items := make([]returnItemResponse, 0, len(order.Items))
		for _, item := range order.Items {
			items = append(items, returnItemResponse{
				ID:          item.ID.String(),
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				ReasonCode:  item.ReasonCode,
			})
		}

		resp = append(resp, returnOrderResponse{
			ID:             order.ID.String(),
			OrderNumber:    order.OrderNumber,
			CustomerEmail:  order.CustomerEmail,
			TrackingNumber: order.TrackingNumber,
			Status:         string(order.Status),
			CreatedAt:      order.CreatedAt,
			Items:          items,
		})
	}

	return resp
}
