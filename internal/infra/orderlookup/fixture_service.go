// Package orderlookup resolves order numbers against the source storefront.
// The only implementation today is a static fixture standing in for the real
// storefront API until the integration is wired up.
package orderlookup

import (
	"context"
	"strings"

	"returnwiz/internal/domain/entity"
	"returnwiz/internal/domain/service"
)

type fixtureService struct {
	orders map[string]*entity.OrderSnapshot
}

// NewFixtureService returns an OrderLookupService backed by an in-memory
// fixture. Lookup is a pure function of its inputs; the snapshots are never
// mutated after construction.
func NewFixtureService() service.OrderLookupService {
	return &fixtureService{orders: fixtureOrders()}
}

// Lookup resolves an order number and email against the fixture set.
// The email comparison is case-insensitive, matching storefront behavior.
func (s *fixtureService) Lookup(_ context.Context, orderNumber, email string) (*entity.OrderSnapshot, error) {
	order, ok := s.orders[fixtureKey(orderNumber, email)]
	if !ok {
		return nil, service.ErrOrderNotFound
	}

	// Return a copy so callers cannot mutate the fixture.
	snapshot := *order
	snapshot.Items = append([]entity.OrderLineItem(nil), order.Items...)

	return &snapshot, nil
}

func fixtureKey(orderNumber, email string) string {
	return orderNumber + "|" + strings.ToLower(strings.TrimSpace(email))
}

func fixtureOrders() map[string]*entity.OrderSnapshot {
	orders := []*entity.OrderSnapshot{
		{
			OrderID:       "gid://shop/Order/5001",
			OrderNumber:   "1001",
			CustomerEmail: "a@b.com",
			Currency:      "DKK",
			Items: []entity.OrderLineItem{
				{
					ID:          "li_1",
					ProductName: "Basic T-shirt",
					VariantName: "Medium / Black",
					ImageURL:    "https://cdn.example.com/img/tshirt.jpg",
					Price:       19900,
					Quantity:    1,
				},
				{
					ID:          "li_2",
					ProductName: "Snapback Cap",
					VariantName: "One Size",
					ImageURL:    "https://cdn.example.com/img/cap.jpg",
					Price:       14900,
					Quantity:    1,
				},
			},
		},
		{
			OrderID:       "gid://shop/Order/5002",
			OrderNumber:   "1002",
			CustomerEmail: "c@d.com",
			Currency:      "DKK",
			Items: []entity.OrderLineItem{
				{
					ID:          "li_3",
					ProductName: "Hoodie",
					VariantName: "Large / Navy",
					ImageURL:    "https://cdn.example.com/img/hoodie.jpg",
					Price:       44900,
					Quantity:    2,
				},
			},
		},
	}

	indexed := make(map[string]*entity.OrderSnapshot, len(orders))
	for _, order := range orders {
		indexed[fixtureKey(order.OrderNumber, order.CustomerEmail)] = order
	}

	return indexed
}
