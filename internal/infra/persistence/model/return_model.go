package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReturnOrderModel mirrors the 'returns' table.
type ReturnOrderModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index"`

	OrderID       string `gorm:"type:varchar(255);index"`
	OrderNumber   string `gorm:"type:varchar(64)"`
	CustomerEmail string `gorm:"type:varchar(255)"`

	TrackingNumber string `gorm:"type:varchar(64);uniqueIndex;not null"`
	LabelURL       string `gorm:"type:text"`
	QRCodeURL      string `gorm:"type:text"`

	Status string `gorm:"type:varchar(32);index;not null"`

	CreatedAt time.Time

	// Items die with their parent; they have no meaning on their own.
	Items []ReturnItemModel `gorm:"foreignKey:ReturnID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ReturnOrderModel) TableName() string {
	return "returns"
}

// BeforeCreate assigns the UUID in Go so the model works on both PostgreSQL
// and the sqlite driver used in tests.
func (m *ReturnOrderModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// ReturnItemModel mirrors the 'return_items' table.
type ReturnItemModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReturnID uuid.UUID `gorm:"type:uuid;not null;index"`

	LineItemID  string `gorm:"type:varchar(255)"`
	ProductName string `gorm:"type:varchar(255)"`
	Quantity    int    `gorm:"not null"`
	ReasonCode  string `gorm:"type:varchar(64)"`
}

// TableName explicitly sets the table name for GORM.
func (ReturnItemModel) TableName() string {
	return "return_items"
}

// BeforeCreate assigns the UUID in Go so the model works on both PostgreSQL
// and the sqlite driver used in tests.
func (m *ReturnItemModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
