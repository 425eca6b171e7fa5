package entity

// OrderSnapshot is a read-only view of a source order as returned by the
// order lookup. It is never persisted; return orders only keep the
// identifiers they need from it.
type OrderSnapshot struct {
	OrderID       string // Identifier in the source system.
	OrderNumber   string
	CustomerEmail string // Email as known by the source system.
	Currency      string // ISO 4217 code, e.g. "DKK".
	Items         []OrderLineItem
}

// OrderLineItem is one purchasable line within an order snapshot.
type OrderLineItem struct {
	ID          string
	ProductName string
	VariantName string
	ImageURL    string
	Price       int64 // Unit price in minor currency units.
	Quantity    int
}
