// Package customize implements the assemblable-product customization engine:
// option groups with dependency rules and conditional price matrices, the
// per-session selection state machine, validation, deterministic
// customization hashing and price aggregation. It is pure in-memory
// computation; catalog definitions are read-only inputs and the only output
// is the (customization, hash, price) tuple handed to the cart.
package customize

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pedeaqui/pedeaqui-backend/pkg/enums"
	"github.com/pedeaqui/pedeaqui-backend/pkg/types"
)

// Product is the engine's read-only view of a catalog product: a base price
// and an ordered list of option groups.
type Product struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"base_price"`
	Groups    []Group         `json:"groups"`
}

// Group is one option group. Bounds are the static selection bounds; when
// DependsOn is set, the effective bounds may differ per current parent
// selection. DependsOn.ParentGroupIndex always points at an earlier group.
type Group struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Type      enums.GroupType        `json:"type"`
	Required  bool                   `json:"required"`
	Bounds    types.SelectionBounds  `json:"bounds"`
	Options   []Option               `json:"options"`
	DependsOn *types.GroupDependency `json:"depends_on,omitempty"`
}

// Option is one selectable option. Price is the unconditional incremental
// price; PriceMatrix may override it depending on a parent group's selection.
type Option struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description,omitempty"`
	Available   bool                     `json:"available"`
	Price       decimal.Decimal          `json:"price"`
	PriceMatrix *types.OptionPriceMatrix `json:"price_matrix,omitempty"`
}

// GroupByID returns the group with the given ID, or false.
func (p Product) GroupByID(groupID string) (Group, bool) {
	for _, group := range p.Groups {
		if group.ID == groupID {
			return group, true
		}
	}
	return Group{}, false
}

// OptionByID returns the option with the given ID, or false.
func (g Group) OptionByID(optionID string) (Option, bool) {
	for _, option := range g.Options {
		if option.ID == optionID {
			return option, true
		}
	}
	return Option{}, false
}
