package types

import (
	"github.com/shopspring/decimal"

	"github.com/pedeaqui/pedeaqui-backend/pkg/enums"
)

// SelectedOption is one confirmed option inside a customization group. Price
// is the effective price frozen at confirmation time; later catalog edits
// must not alter it.
type SelectedOption struct {
	OptionID string          `json:"option_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity *int            `json:"quantity,omitempty"`
}

// CustomizationGroup captures the confirmed selection for one option group.
type CustomizationGroup struct {
	GroupName string           `json:"group_name"`
	Type      enums.GroupType  `json:"type"`
	Selected  []SelectedOption `json:"selected"`
}

// Customization is the persisted form of a confirmed product customization,
// keyed by group ID. Groups with no selection are omitted entirely.
// Observations is free text that never participates in hashing.
type Customization struct {
	Groups       map[string]CustomizationGroup `json:"groups,omitempty"`
	Observations string                        `json:"observations,omitempty"`
}

// IsEmpty reports whether the customization carries no selections.
func (c Customization) IsEmpty() bool {
	return len(c.Groups) == 0
}
