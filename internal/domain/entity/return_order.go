package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReturnStatus is the lifecycle state of a return order. The flow is linear
// and forward-only: CREATED -> IN_TRANSIT -> DELIVERED -> REFUNDED.
// Only the initial CREATED assignment happens today; the later transitions
// are reserved for carrier and refund event sources.
type ReturnStatus string

const (
	ReturnStatusCreated   ReturnStatus = "CREATED"
	ReturnStatusInTransit ReturnStatus = "IN_TRANSIT"
	ReturnStatusDelivered ReturnStatus = "DELIVERED"
	ReturnStatusRefunded  ReturnStatus = "REFUNDED"
)

// ReturnOrder is one customer-initiated return request against one source
// order. It always belongs to exactly one tenant and owns its items.
type ReturnOrder struct {
	ID       uuid.UUID // The unique ID of this return order.
	TenantID uuid.UUID // Owning tenant. Must reference an existing tenant.

	// Source order data as resolved through the order lookup.
	OrderID       string // Identifier of the order in the source system (optional).
	OrderNumber   string // Human-facing order number the customer typed in.
	CustomerEmail string

	// Shipping placeholders until a real carrier is wired up.
	TrackingNumber string // Unique system-wide once assigned.
	LabelURL       string // Empty until a carrier issues a label.
	QRCodeURL      string // Data URL of the drop-off QR code.

	Status    ReturnStatus
	CreatedAt time.Time

	Items []*ReturnItem // At least the qualifying request items; loaded eagerly on reads.
}

// ReturnItem is one returned line item within a return order. Items are
// created together with their parent and are immutable afterwards.
type ReturnItem struct {
	ID       uuid.UUID
	ReturnID uuid.UUID // Parent return order.

	LineItemID  string // Line-item identifier from the order lookup.
	ProductName string
	Quantity    int    // Always > 0 for persisted items.
	ReasonCode  string // e.g. "SIZE_TOO_SMALL", "DEFECT", "OTHER".
}
