package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/pedeaqui/pedeaqui-backend/pkg/enums"
	"github.com/pedeaqui/pedeaqui-backend/pkg/types"
)

// ProductGroup is one option group of an assemblable product. Position
// determines group order; depends-on rules may only reference groups with a
// lower position.
type ProductGroup struct {
	ID            uuid.UUID              `gorm:"column:id;type:uuid;primaryKey"`
	ProductID     uuid.UUID              `gorm:"column:product_id;type:uuid;not null;index"`
	Position      int                    `gorm:"column:position;not null;default:0"`
	Name          string                 `gorm:"column:name;not null"`
	Type          enums.GroupType        `gorm:"column:type;not null"`
	Required      bool                   `gorm:"column:required;not null;default:false"`
	MinSelections int                    `gorm:"column:min_selections;not null;default:0"`
	MaxSelections int                    `gorm:"column:max_selections;not null;default:1"`
	DependsOn     *types.GroupDependency `gorm:"column:depends_on;type:jsonb;serializer:json"`
	Options       []GroupOption          `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}
