package service

import (
	"context"
	"errors"

	"returnwiz/internal/domain/entity"
)

// ErrOrderNotFound is returned when the source system knows no order for the
// given number/email pair. It is a client-facing miss, never fatal.
var ErrOrderNotFound = errors.New("order not found")

// OrderLookupService resolves an order number and customer email to the
// order's line items in the source system. The current implementation is a
// static fixture; a real storefront-backed implementation must honor ctx
// cancellation since it crosses the network.
type OrderLookupService interface {
	Lookup(ctx context.Context, orderNumber, email string) (*entity.OrderSnapshot, error)
}
