package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pedeaqui/pedeaqui-backend/pkg/types"
)

// GroupOption is one selectable option inside a product group. Unavailable
// options are hidden from new selections but may still appear in stored
// customizations.
type GroupOption struct {
	ID          uuid.UUID                `gorm:"column:id;type:uuid;primaryKey"`
	GroupID     uuid.UUID                `gorm:"column:group_id;type:uuid;not null;index"`
	Position    int                      `gorm:"column:position;not null;default:0"`
	Name        string                   `gorm:"column:name;not null"`
	Description *string                  `gorm:"column:description"`
	Available   bool                     `gorm:"column:available;not null;default:true"`
	Price       decimal.Decimal          `gorm:"column:price;type:numeric(10,2);not null"`
	PriceMatrix *types.OptionPriceMatrix `gorm:"column:price_matrix;type:jsonb;serializer:json"`
	CreatedAt   time.Time                `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time                `gorm:"column:updated_at;autoUpdateTime"`
}
