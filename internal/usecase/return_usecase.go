package usecase

import (
	"context"

	"returnwiz/internal/domain/entity"
)

// --- Input DTOs ---

// SearchOrderInput identifies an order by number plus the customer email on it.
type SearchOrderInput struct {
	OrderNumber string
	Email       string
}

// ReturnItemInput is one order line the customer wants to send back.
type ReturnItemInput struct {
	LineItemID  string
	ProductName string
	Quantity    int
	ReasonCode  string
}

// CreateReturnInput defines the data required to file a return.
type CreateReturnInput struct {
	OrderID       string
	OrderNumber   string
	CustomerEmail string
	Items         []ReturnItemInput
}

// ListReturnsInput scopes a returns listing to one tenant. An empty ShopEmail
// asks for the unscoped diagnostic listing, which is rejected unless the
// deployment explicitly allows it.
type ListReturnsInput struct {
	ShopEmail string
}

// --- Output DTOs ---

// CreateReturnOutput is the receipt handed back to the customer portal.
type CreateReturnOutput struct {
	ReturnID       string
	TrackingNumber string
	TenantUsed     string
}

// ReturnUsecase defines the interface for the return lifecycle operations.
type ReturnUsecase interface {
	SearchOrder(ctx context.Context, input SearchOrderInput) (*entity.OrderSnapshot, error)
	CreateReturn(ctx context.Context, input CreateReturnInput) (*CreateReturnOutput, error)
	ListReturns(ctx context.Context, input ListReturnsInput) ([]*entity.ReturnOrder, error)
}
