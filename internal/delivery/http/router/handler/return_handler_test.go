package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverymw "returnwiz/internal/delivery/http/middleware"
	"returnwiz/internal/delivery/http/validator"
	"returnwiz/internal/domain/entity"
	domainerrors "returnwiz/internal/domain/errors"
	mockUC "returnwiz/internal/mocks/usecase"
	"returnwiz/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestEcho builds an Echo instance with the production validator and
// error handler so handler tests cover the full request path.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = deliverymw.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestReturnHandler_CreateReturn(t *testing.T) {
	uc := mockUC.NewMockReturnUsecase(t)
	e := newTestEcho()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewReturnHandler(uc, logger)
	e.POST("/returns", h.CreateReturn)

	uc.EXPECT().
		CreateReturn(mock.Anything, usecase.CreateReturnInput{
			OrderID:       "gid://shop/Order/1001",
			OrderNumber:   "1001",
			CustomerEmail: "a@b.com",
			Items: []usecase.ReturnItemInput{
				{LineItemID: "li_1", ProductName: "Basic T-shirt", Quantity: 1, ReasonCode: "WRONG_SIZE"},
				{LineItemID: "li_2", ProductName: "Snapback Cap", Quantity: 0, ReasonCode: "DAMAGED"},
			},
		}).
		Return(&usecase.CreateReturnOutput{
			ReturnID:       uuid.NewString(),
			TrackingNumber: "RW-TRACK1",
			TenantUsed:     "Demo Shop",
		}, nil)

	rec := doJSON(e, http.MethodPost, "/returns", `{
		"order_id": "gid://shop/Order/1001",
		"order_number": "1001",
		"email": "a@b.com",
		"items": [
			{"id": "li_1", "product_name": "Basic T-shirt", "quantity": 1, "reason": "WRONG_SIZE"},
			{"id": "li_2", "product_name": "Snapback Cap", "quantity": 0, "reason": "DAMAGED"}
		]
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"tracking_number":"RW-TRACK1"`)
	assert.Contains(t, body, `"tenant_used":"Demo Shop"`)
	assert.Contains(t, body, `"return_id"`)
}

func TestReturnHandler_CreateReturn_MissingEmail(t *testing.T) {
	uc := mockUC.NewMockReturnUsecase(t)
	e := newTestEcho()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewReturnHandler(uc, logger)
	e.POST("/returns", h.CreateReturn)

	rec := doJSON(e, http.MethodPost, "/returns", `{"order_number": "1001"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestReturnHandler_SearchOrder_NotFound(t *testing.T) {
	uc := mockUC.NewMockReturnUsecase(t)
	e := newTestEcho()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewReturnHandler(uc, logger)
	e.POST("/returns/search", h.SearchOrder)

	uc.EXPECT().
		SearchOrder(mock.Anything, usecase.SearchOrderInput{OrderNumber: "9999", Email: "a@b.com"}).
		Return(nil, domainerrors.ErrOrderNotFound.WrapMessage("no order for this number and email"))

	rec := doJSON(e, http.MethodPost, "/returns/search", `{"order_number": "9999", "email": "a@b.com"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ORDER_NOT_FOUND")
}

func TestReturnHandler_SearchOrder_Success(t *testing.T) {
	uc := mockUC.NewMockReturnUsecase(t)
	e := newTestEcho()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewReturnHandler(uc, logger)
	e.POST("/returns/search", h.SearchOrder)

	uc.EXPECT().
		SearchOrder(mock.Anything, usecase.SearchOrderInput{OrderNumber: "1001", Email: "a@b.com"}).
		Return(&entity.OrderSnapshot{
			OrderID:       "gid://shop/Order/1001",
			OrderNumber:   "1001",
			CustomerEmail: "a@b.com",
			Currency:      "DKK",
			Items: []entity.OrderLineItem{
				{ID: "li_1", ProductName: "Basic T-shirt", VariantName: "Medium / Black", Price: 19900, Quantity: 1},
			},
		}, nil)

	rec := doJSON(e, http.MethodPost, "/returns/search", `{"order_number": "1001", "email": "a@b.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"currency":"DKK"`)
	assert.Contains(t, body, `"product_name":"Basic T-shirt"`)
	assert.Contains(t, body, `"price":19900`)
}

func TestReturnHandler_ListReturns(t *testing.T) {
	uc := mockUC.NewMockReturnUsecase(t)
	e := newTestEcho()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewReturnHandler(uc, logger)
	e.GET("/returns", h.ListReturns)

	orderID := uuid.New()
	uc.EXPECT().
		ListReturns(mock.Anything, usecase.ListReturnsInput{ShopEmail: "owner@shop.example"}).
		Return([]*entity.ReturnOrder{
			{
				ID:             orderID,
				OrderNumber:    "1001",
				CustomerEmail:  "a@b.com",
				TrackingNumber: "RW-TRACK1",
				Status:         entity.ReturnStatusCreated,
				CreatedAt:      time.Now(),
				Items: []*entity.ReturnItem{
					{ID: uuid.New(), ProductName: "Basic T-shirt", Quantity: 1, ReasonCode: "WRONG_SIZE"},
				},
			},
		}, nil)

	rec := doJSON(e, http.MethodGet, "/returns?shopEmail=owner@shop.example", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"status":"CREATED"`)
	assert.Contains(t, body, `"tracking_number":"RW-TRACK1"`)
	assert.Contains(t, body, orderID.String())
}

func TestReturnHandler_ListReturns_ShopEmailRequired(t *testing.T) {
	uc := mockUC.NewMockReturnUsecase(t)
	e := newTestEcho()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewReturnHandler(uc, logger)
	e.GET("/returns", h.ListReturns)

	uc.EXPECT().
		ListReturns(mock.Anything, usecase.ListReturnsInput{}).
		Return(nil, domainerrors.ErrShopEmailRequired.WrapMessage("listing without a shopEmail filter is disabled"))

	rec := doJSON(e, http.MethodGet, "/returns", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "SHOP_EMAIL_REQUIRED")
}
