package impl

import (
	"context"
	"log/slog"

	"returnwiz/config"
	deliverycontext "returnwiz/internal/delivery/context"
	"returnwiz/internal/domain/entity"
	domainerrors "returnwiz/internal/domain/errors"
	"returnwiz/internal/domain/repository"
	"returnwiz/internal/domain/service"
	"returnwiz/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// trackingAttempts bounds how often CreateReturn retries with a fresh
// tracking number after a uniqueness conflict.
const trackingAttempts = 2

// returnService implements the ReturnUsecase interface.
type returnService struct {
	txManager         repository.TransactionManager
	tenantRepo        repository.TenantRepository
	returnRepo        repository.ReturnRepository
	orderLookup       service.OrderLookupService
	trackingGen       service.TrackingNumberGenerator
	labelService      service.LabelService
	allowEmptyReturns bool
	allowUnscopedList bool
	logger            *slog.Logger
}

// ReturnServiceParams holds dependencies for returnService, injected by Fx.
type ReturnServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	TenantRepo   repository.TenantRepository
	ReturnRepo   repository.ReturnRepository
	OrderLookup  service.OrderLookupService
	TrackingGen  service.TrackingNumberGenerator
	LabelService service.LabelService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewReturnService is the constructor for returnService. It receives all dependencies as interfaces.
func NewReturnService(params ReturnServiceParams) usecase.ReturnUsecase {
	allowEmptyReturns := true
	allowUnscopedList := false
	if params.Config != nil && params.Config.ReturnPolicy != nil {
		allowEmptyReturns = params.Config.ReturnPolicy.AllowEmptyReturns
		allowUnscopedList = params.Config.ReturnPolicy.AllowUnscopedList
	}

	return &returnService{
		txManager:         params.TxManager,
		tenantRepo:        params.TenantRepo,
		returnRepo:        params.ReturnRepo,
		orderLookup:       params.OrderLookup,
		trackingGen:       params.TrackingGen,
		labelService:      params.LabelService,
		allowEmptyReturns: allowEmptyReturns,
		allowUnscopedList: allowUnscopedList,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *returnService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SearchOrder resolves an order number and customer email against the source
// system so the portal can show the returnable line items.
func (srv *returnService) SearchOrder(ctx context.Context, input usecase.SearchOrderInput) (*entity.OrderSnapshot, error) {
	snapshot, err := srv.orderLookup.Lookup(ctx, input.OrderNumber, input.Email)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("no order for this number and email")
		}

		return nil, errors.Wrap(err, "order lookup failed")
	}

	return snapshot, nil
}

// CreateReturn files a new return order: it resolves the owning tenant,
// assigns a tracking number with its drop-off assets, and persists the order
// together with its items in one transaction.
func (srv *returnService) CreateReturn(ctx context.Context, input usecase.CreateReturnInput) (*usecase.CreateReturnOutput, error) {
	items := filterReturnItems(input.Items)
	if len(items) == 0 {
		srv.log(ctx).Warn("Return request carries no items with a positive quantity",
			slog.String("orderNumber", input.OrderNumber),
		)
		if !srv.allowEmptyReturns {
			return nil, domainerrors.ErrEmptyReturnRequest.WrapMessage("all items were filtered out")
		}
	}

	tenant, err := srv.resolveTenant(ctx)
	if err != nil {
		return nil, err
	}

	var order *entity.ReturnOrder
	for attempt := 1; ; attempt++ {
		trackingNumber := srv.trackingGen.Generate()

		labelURL, qrCodeURL, labelErr := srv.labelService.GenerateLabel(trackingNumber)
		if labelErr != nil {
			return nil, errors.Wrap(labelErr, "failed to generate shipping assets")
		}

		order = &entity.ReturnOrder{
			TenantID:       tenant.ID,
			OrderID:        input.OrderID,
			OrderNumber:    input.OrderNumber,
			CustomerEmail:  input.CustomerEmail,
			TrackingNumber: trackingNumber,
			LabelURL:       labelURL,
			QRCodeURL:      qrCodeURL,
			Status:         entity.ReturnStatusCreated,
			Items:          items,
		}

		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return repoFactory.ReturnRepo().Create(ctx, order)
		})
		if err == nil {
			break
		}
		if errors.Is(err, domainerrors.ErrTrackingNumberConflict) && attempt < trackingAttempts {
			srv.log(ctx).Warn("Tracking number collision, retrying with a fresh number",
				slog.String("trackingNumber", trackingNumber),
			)

			continue
		}

		return nil, err
	}

	srv.log(ctx).Info("Return order created",
		slog.String("returnID", order.ID.String()),
		slog.String("trackingNumber", order.TrackingNumber),
		slog.String("tenantID", tenant.ID.String()),
		slog.Int("items", len(order.Items)),
	)

	return &usecase.CreateReturnOutput{
		ReturnID:       order.ID.String(),
		TrackingNumber: order.TrackingNumber,
		TenantUsed:     tenant.ShopName,
	}, nil
}

// ListReturns retrieves return orders scoped to one tenant's shop email.
// The unscoped listing is a diagnostic facility and stays disabled unless the
// deployment opts in.
func (srv *returnService) ListReturns(ctx context.Context, input usecase.ListReturnsInput) ([]*entity.ReturnOrder, error) {
	if input.ShopEmail == "" {
		if !srv.allowUnscopedList {
			return nil, domainerrors.ErrShopEmailRequired.WrapMessage("listing without a shopEmail filter is disabled")
		}

		return srv.returnRepo.ListAll(ctx)
	}

	return srv.returnRepo.ListByTenantEmail(ctx, input.ShopEmail)
}

// resolveTenant picks the tenant a new return belongs to. With no storefront
// session on the customer portal there is nothing to key on, so the first
// registered tenant wins; an empty store gets a bootstrap tenant created on
// the spot. Losing the bootstrap race is fine, the winner's row is re-read.
func (srv *returnService) resolveTenant(ctx context.Context) (*entity.Tenant, error) {
	tenant, err := srv.tenantRepo.FindFirst(ctx)
	if err == nil {
		return tenant, nil
	}
	if !errors.Is(err, repository.ErrTenantNotFound) {
		return nil, errors.Wrap(err, "failed to resolve owning tenant")
	}

	bootstrap := &entity.Tenant{
		Email:    entity.BootstrapTenantEmail,
		ShopName: entity.BootstrapTenantName,
	}
	createErr := srv.tenantRepo.Create(ctx, bootstrap)
	if createErr == nil {
		srv.log(ctx).Info("Bootstrapped default tenant",
			slog.String("tenantID", bootstrap.ID.String()),
		)

		return bootstrap, nil
	}
	if errors.Is(createErr, domainerrors.ErrTenantAlreadyExists) {
		return srv.tenantRepo.FindByEmail(ctx, entity.BootstrapTenantEmail)
	}

	return nil, createErr
}

// filterReturnItems drops line items without a positive quantity, keeping the
// request order of the survivors.
func filterReturnItems(inputs []usecase.ReturnItemInput) []*entity.ReturnItem {
	items := make([]*entity.ReturnItem, 0, len(inputs))
	for _, item := range inputs {
		if item.Quantity <= 0 {
			continue
		}

		items = append(items, &entity.ReturnItem{
			LineItemID:  item.LineItemID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			ReasonCode:  item.ReasonCode,
		})
	}

	return items
}
