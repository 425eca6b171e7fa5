package repository

import (
	"context"
	"errors"

	"returnwiz/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReturnNotFound is a domain-specific error returned when a return order is not found.
var ErrReturnNotFound = errors.New("return order not found")

// ReturnRepository defines the standard operations for return order persistence.
// A return order and its items form one aggregate: Create persists both, and
// reads always load the items with their parent.
type ReturnRepository interface {
	// Create persists a return order together with all of its items.
	// Callers that need the insert to be atomic with other writes must run
	// it through the TransactionManager.
	Create(ctx context.Context, order *entity.ReturnOrder) error

	// FindByID retrieves a single return order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ReturnOrder, error)

	// ListByTenantEmail retrieves the return orders owned by the tenant with
	// the given email, items included, newest first.
	ListByTenantEmail(ctx context.Context, email string) ([]*entity.ReturnOrder, error)

	// ListAll retrieves every tenant's return orders, items included, newest
	// first. Cross-tenant by design; exposed only behind a diagnostic flag.
	ListAll(ctx context.Context) ([]*entity.ReturnOrder, error)
}
