package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a store listing. Assemblable products carry ordered option
// groups that drive the customization engine.
type Product struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	StoreID       uuid.UUID       `gorm:"column:store_id;type:uuid;not null"`
	Name          string          `gorm:"column:name;not null"`
	Description   *string         `gorm:"column:description"`
	BasePrice     decimal.Decimal `gorm:"column:base_price;type:numeric(10,2);not null"`
	IsActive      bool            `gorm:"column:is_active;not null;default:true"`
	IsAssemblable bool            `gorm:"column:is_assemblable;not null;default:false"`
	Groups        []ProductGroup  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
