package types

import "github.com/shopspring/decimal"

// SelectionBounds bound how many selections a group accepts.
type SelectionBounds struct {
	MinSelections int `json:"min_selections"`
	MaxSelections int `json:"max_selections"`
}

// GroupDependency overrides a group's selection bounds based on what was
// picked in an earlier group of the same product. Rules are keyed by the
// parent group's option names. ParentGroupIndex must point at a group that
// appears earlier in the product's group list.
type GroupDependency struct {
	ParentGroupIndex int                        `json:"parent_group_index"`
	Rules            map[string]SelectionBounds `json:"rules"`
}

// OptionPriceMatrix overrides an option's price based on what was picked in
// an earlier group. Prices are keyed by the parent group's option names.
type OptionPriceMatrix struct {
	ParentGroupIndex int                        `json:"parent_group_index"`
	Prices           map[string]decimal.Decimal `json:"prices"`
}
