package customize

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pedeaqui/pedeaqui-backend/pkg/enums"
	"github.com/pedeaqui/pedeaqui-backend/pkg/types"
)

func money(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// burgerProduct mirrors a typical assemblable listing: a required size, an
// optional extras group capped at two, a quantity-capped toppings group and
// a sauce group whose bounds depend on the chosen size. Option C carries a
// price matrix that bumps its price when the size is Large.
func burgerProduct() Product {
	return Product{
		ID:        uuid.New(),
		Name:      "House Burger",
		BasePrice: money("20.00"),
		Groups: []Group{
			{
				ID:       "g-size",
				Name:     "Size",
				Type:     enums.GroupTypeSingleChoice,
				Required: true,
				Bounds:   types.SelectionBounds{MinSelections: 1, MaxSelections: 1},
				Options: []Option{
					{ID: "o-small", Name: "Small", Available: true, Price: money("0")},
					{ID: "o-large", Name: "Large", Available: true, Price: money("5.00")},
				},
			},
			{
				ID:     "g-extras",
				Name:   "Extras",
				Type:   enums.GroupTypeMultiChoice,
				Bounds: types.SelectionBounds{MinSelections: 0, MaxSelections: 2},
				Options: []Option{
					{ID: "o-a", Name: "Bacon", Available: true, Price: money("2.00")},
					{ID: "o-b", Name: "Cheddar", Available: true, Price: money("3.00")},
					{
						ID: "o-c", Name: "Truffle Mayo", Available: true, Price: money("4.00"),
						PriceMatrix: &types.OptionPriceMatrix{
							ParentGroupIndex: 0,
							Prices: map[string]decimal.Decimal{
								"Large": money("6.00"),
							},
						},
					},
				},
			},
			{
				ID:     "g-toppings",
				Name:   "Toppings",
				Type:   enums.GroupTypeQuantityChoice,
				Bounds: types.SelectionBounds{MinSelections: 0, MaxSelections: 3},
				Options: []Option{
					{ID: "o-x", Name: "Pickles", Available: true, Price: money("1.00")},
					{ID: "o-y", Name: "Onion Rings", Available: true, Price: money("2.00")},
				},
			},
			{
				ID:     "g-sauce",
				Name:   "Sauce",
				Type:   enums.GroupTypeMultiChoice,
				Bounds: types.SelectionBounds{MinSelections: 0, MaxSelections: 1},
				DependsOn: &types.GroupDependency{
					ParentGroupIndex: 0,
					Rules: map[string]types.SelectionBounds{
						"Large": {MinSelections: 1, MaxSelections: 1},
					},
				},
				Options: []Option{
					{ID: "o-bbq", Name: "BBQ", Available: true, Price: money("0")},
					{ID: "o-garlic", Name: "Garlic", Available: true, Price: money("0")},
				},
			},
		},
	}
}

func selectionsWith(overrides map[string]Value) Selections {
	product := burgerProduct()
	selections := make(Selections, len(product.Groups))
	for _, group := range product.Groups {
		selections[group.ID] = EmptyValue(group.Type)
	}
	for groupID, value := range overrides {
		selections[groupID] = value
	}
	return selections
}
