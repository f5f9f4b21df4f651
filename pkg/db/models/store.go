package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Store is a registered shop on the platform.
type Store struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	OwnerID        uuid.UUID      `gorm:"column:owner_id;type:uuid;not null"`
	Name           string         `gorm:"column:name;not null"`
	Slug           string         `gorm:"column:slug;not null;uniqueIndex"`
	City           string         `gorm:"column:city;not null"`
	DeliveryCities pq.StringArray `gorm:"column:delivery_cities;type:text[];not null;default:ARRAY[]::text[]"`
	PaymentMethods pq.StringArray `gorm:"column:payment_methods;type:text[];not null;default:ARRAY[]::text[]"`
	IsOpen         bool           `gorm:"column:is_open;not null;default:true"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
