package customize

import (
	"github.com/shopspring/decimal"

	"github.com/pedeaqui/pedeaqui-backend/pkg/enums"
)

// UnitPrice sums the product's base price with every group's effective
// contribution: the selected option for single-choice, all selected options
// for multi-choice, and price times quantity for quantity-choice.
func UnitPrice(product Product, selections Selections) decimal.Decimal {
	total := product.BasePrice

	for _, group := range product.Groups {
		value := selections.Get(group)
		if value.IsEmpty() {
			continue
		}

		for _, option := range group.Options {
			if !value.Contains(option.ID) {
				continue
			}
			price := EffectivePrice(product, option, selections)
			if group.Type == enums.GroupTypeQuantityChoice {
				price = price.Mul(decimal.NewFromInt(int64(value.Quantity(option.ID))))
			}
			total = total.Add(price)
		}
	}

	return total
}

// TotalPrice multiplies the fully customized unit price by quantity. The
// customization is priced per unit first; rounding is left to presentation.
func TotalPrice(product Product, selections Selections, quantity int) decimal.Decimal {
	if quantity < 0 {
		quantity = 0
	}
	return UnitPrice(product, selections).Mul(decimal.NewFromInt(int64(quantity)))
}
