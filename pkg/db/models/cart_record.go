package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pedeaqui/pedeaqui-backend/pkg/enums"
)

// CartRecord is the active cart of one customer at one store.
type CartRecord struct {
	ID             uuid.UUID             `gorm:"column:id;type:uuid;primaryKey"`
	CustomerID     uuid.UUID             `gorm:"column:customer_id;type:uuid;not null"`
	StoreID        uuid.UUID             `gorm:"column:store_id;type:uuid;not null"`
	Status         enums.CartStatus      `gorm:"column:status;not null;default:'active'"`
	DeliveryMethod *enums.DeliveryMethod `gorm:"column:delivery_method"`
	PaymentMethod  *enums.PaymentMethod  `gorm:"column:payment_method"`
	Subtotal       decimal.Decimal       `gorm:"column:subtotal;type:numeric(10,2);not null"`
	Total          decimal.Decimal       `gorm:"column:total;type:numeric(10,2);not null"`
	Items          []CartItem            `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
