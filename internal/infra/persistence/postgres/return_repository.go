package postgres

import (
	"context"

	"returnwiz/internal/domain/entity"
	domainerrors "returnwiz/internal/domain/errors"
	"returnwiz/internal/domain/repository"
	"returnwiz/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// returnRepository implements the repository.ReturnRepository interface using GORM.
type returnRepository struct {
	db *gorm.DB
}

// NewReturnRepository is the constructor for returnRepository.
func NewReturnRepository(db *gorm.DB) repository.ReturnRepository {
	return &returnRepository{
		db: db,
	}
}

// Create persists a return order together with all of its items.
// GORM inserts the parent row and the association rows from one model graph;
// atomicity with other writes comes from running inside txManager.Execute.
func (repo *returnRepository) Create(ctx context.Context, order *entity.ReturnOrder) error {
	orderM := fromReturnDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTrackingNumberConflict.WrapMessage("tracking number already assigned")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrTenantNotFound.WrapMessage("owning tenant does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required return information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create return order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].ReturnID = itemM.ReturnID
	}

	return nil
}

// FindByID retrieves a single return order with its items.
func (repo *returnRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ReturnOrder, error) {
	var orderM model.ReturnOrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReturnNotFound
		}

		return nil, errors.Wrap(err, "failed to find return order by ID")
	}

	return toReturnDomain(&orderM), nil
}

// ListByTenantEmail retrieves the return orders owned by the tenant with the
// given email. Tenant scoping is a join against the tenants table, not a
// separate cache.
func (repo *returnRepository) ListByTenantEmail(ctx context.Context, email string) ([]*entity.ReturnOrder, error) {
	var orderModels []*model.ReturnOrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Joins("JOIN tenants ON tenants.id = returns.tenant_id").
		Where("tenants.email = ?", email).
		Order("returns.created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list return orders by tenant email")
	}

	return toReturnDomainSlice(orderModels), nil
}

// ListAll retrieves every tenant's return orders. Diagnostic use only.
func (repo *returnRepository) ListAll(ctx context.Context) ([]*entity.ReturnOrder, error) {
	var orderModels []*model.ReturnOrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list return orders")
	}

	return toReturnDomainSlice(orderModels), nil
}

// --- Mapper Functions ---

func toReturnDomainSlice(models []*model.ReturnOrderModel) []*entity.ReturnOrder {
	orders := make([]*entity.ReturnOrder, 0, len(models))
	for _, orderM := range models {
		orders = append(orders, toReturnDomain(orderM))
	}

	return orders
}

// toReturnDomain converts a GORM ReturnOrderModel to a domain ReturnOrder entity.
func toReturnDomain(data *model.ReturnOrderModel) *entity.ReturnOrder {
	if data == nil {
		return nil
	}

	items := make([]*entity.ReturnItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, &entity.ReturnItem{
			ID:          itemM.ID,
			ReturnID:    itemM.ReturnID,
			LineItemID:  itemM.LineItemID,
			ProductName: itemM.ProductName,
			Quantity:    itemM.Quantity,
			ReasonCode:  itemM.ReasonCode,
		})
	}

	return &entity.ReturnOrder{
		ID:             data.ID,
		TenantID:       data.TenantID,
		OrderID:        data.OrderID,
		OrderNumber:    data.OrderNumber,
		CustomerEmail:  data.CustomerEmail,
		TrackingNumber: data.TrackingNumber,
		LabelURL:       data.LabelURL,
		QRCodeURL:      data.QRCodeURL,
		Status:         entity.ReturnStatus(data.Status),
		CreatedAt:      data.CreatedAt,
		Items:          items,
	}
}

// fromReturnDomain converts a domain ReturnOrder entity to a GORM ReturnOrderModel.
func fromReturnDomain(data *entity.ReturnOrder) *model.ReturnOrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.ReturnItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.ReturnItemModel{
			ID:          item.ID,
			LineItemID:  item.LineItemID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			ReasonCode:  item.ReasonCode,
		})
	}

	return &model.ReturnOrderModel{
		ID:             data.ID,
		TenantID:       data.TenantID,
		OrderID:        data.OrderID,
		OrderNumber:    data.OrderNumber,
		CustomerEmail:  data.CustomerEmail,
		TrackingNumber: data.TrackingNumber,
		LabelURL:       data.LabelURL,
		QRCodeURL:      data.QRCodeURL,
		Status:         string(data.Status),
		Items:          items,
	}
}
