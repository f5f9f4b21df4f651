package customize

import (
	"github.com/shopspring/decimal"

	"github.com/pedeaqui/pedeaqui-backend/pkg/types"
)

// GroupQuote carries the live per-group data the UI renders while the
// customer assembles a product: the bounds that currently apply and the
// effective price of each option under the present selections.
type GroupQuote struct {
	GroupID      string                     `json:"group_id"`
	GroupName    string                     `json:"group_name"`
	Bounds       types.SelectionBounds      `json:"bounds"`
	OptionPrices map[string]decimal.Decimal `json:"option_prices"`
}

// Quote is the full derived state for one selection snapshot.
type Quote struct {
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
	Violations []Violation
	Groups     []GroupQuote
	Hash       string
}

// BuildQuote recomputes everything derived from the given selections in one
// pass: prices, violations, per-group effective constraints and the
// customization hash the cart would use. Nothing is cached; dependent groups
// always see the latest parent selections.
func BuildQuote(product Product, selections Selections, quantity int, observations string) Quote {
	groups := make([]GroupQuote, 0, len(product.Groups))
	for _, group := range product.Groups {
		prices := make(map[string]decimal.Decimal, len(group.Options))
		for _, option := range group.Options {
			prices[option.ID] = EffectivePrice(product, option, selections)
		}
		groups = append(groups, GroupQuote{
			GroupID:      group.ID,
			GroupName:    group.Name,
			Bounds:       EffectiveConstraints(product, group, selections),
			OptionPrices: prices,
		})
	}

	customization := BuildCustomization(product, selections, observations)

	return Quote{
		UnitPrice:  UnitPrice(product, selections),
		TotalPrice: TotalPrice(product, selections, quantity),
		Violations: Validate(product, selections),
		Groups:     groups,
		Hash:       Hash(customization),
	}
}
