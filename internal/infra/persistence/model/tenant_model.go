// Package model holds the GORM persistence models. Each model mirrors one
// table explicitly; there is no shared metadata registry beyond these structs
// and the migration that creates them.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantModel mirrors the 'tenants' table.
type TenantModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	ShopName     string    `gorm:"type:varchar(255)"`
	PasswordHash string    `gorm:"type:varchar(255)"`

	// Nullable unique: a pointer keeps absent values out of the index.
	StorefrontDomain *string `gorm:"type:varchar(255);uniqueIndex"`
	StorefrontToken  string  `gorm:"type:varchar(255)"`

	CompanyRegistrationNumber string `gorm:"type:varchar(64)"`

	CarrierCustomerNumber string `gorm:"type:varchar(64)"`
	CarrierAPIKey         string `gorm:"type:varchar(255)"`
	CarrierAPIUser        string `gorm:"type:varchar(255)"`

	LogoURL   string `gorm:"type:text"`
	BannerURL string `gorm:"type:text"`

	CreatedAt time.Time

	Returns []ReturnOrderModel `gorm:"foreignKey:TenantID"`
}

// TableName explicitly sets the table name for GORM.
func (TenantModel) TableName() string {
	return "tenants"
}

// BeforeCreate assigns the UUID in Go so the model works on both PostgreSQL
// and the sqlite driver used in tests.
func (m *TenantModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
