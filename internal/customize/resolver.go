package customize

import (
	"github.com/shopspring/decimal"

	"github.com/pedeaqui/pedeaqui-backend/pkg/types"
)

// EffectiveConstraints resolves the selection bounds that actually apply to
// group given the current selections. Without a dependency, or while the
// parent group has no qualifying selection, the static bounds apply. When
// several parent selections match rules, the most permissive bound wins so
// that a multi-choice parent unlocks the union of what its selections allow.
func EffectiveConstraints(product Product, group Group, selections Selections) types.SelectionBounds {
	if group.DependsOn == nil {
		return group.Bounds
	}

	parentNames := parentSelectedNames(product, group.DependsOn.ParentGroupIndex, selections)
	if len(parentNames) == 0 {
		return group.Bounds
	}

	effective := types.SelectionBounds{MinSelections: 0, MaxSelections: 1}
	matched := false
	for _, name := range parentNames {
		rule, ok := group.DependsOn.Rules[name]
		if !ok {
			continue
		}
		matched = true
		if rule.MinSelections > effective.MinSelections {
			effective.MinSelections = rule.MinSelections
		}
		if rule.MaxSelections > effective.MaxSelections {
			effective.MaxSelections = rule.MaxSelections
		}
	}
	if !matched {
		return group.Bounds
	}
	return effective
}

// EffectivePrice resolves the price that actually applies to option given
// the current selections. With a price matrix and one or more matching
// parent selections, the highest matched override wins (same tie-break as
// constraints, avoiding under-pricing on conflicting overrides); otherwise
// the option's base price applies.
func EffectivePrice(product Product, option Option, selections Selections) decimal.Decimal {
	if option.PriceMatrix == nil {
		return option.Price
	}

	parentNames := parentSelectedNames(product, option.PriceMatrix.ParentGroupIndex, selections)
	if len(parentNames) == 0 {
		return option.Price
	}

	var best decimal.Decimal
	matched := false
	for _, name := range parentNames {
		override, ok := option.PriceMatrix.Prices[name]
		if !ok {
			continue
		}
		if !matched || override.GreaterThan(best) {
			best = override
		}
		matched = true
	}
	if !matched {
		return option.Price
	}
	return best
}

// parentSelectedNames resolves the option names currently selected in the
// group at parentIndex: the single selected option for single-choice, all
// selected options for multi-choice, and all options with quantity > 0 for
// quantity-choice. Out-of-range indices resolve to nothing.
func parentSelectedNames(product Product, parentIndex int, selections Selections) []string {
	if parentIndex < 0 || parentIndex >= len(product.Groups) {
		return nil
	}
	parent := product.Groups[parentIndex]
	value := selections.Get(parent)

	var names []string
	for _, option := range parent.Options {
		if value.Contains(option.ID) {
			names = append(names, option.Name)
		}
	}
	return names
}

// HasParentSelection reports whether the group's dependency parent currently
// has a qualifying selection.
func HasParentSelection(product Product, group Group, selections Selections) bool {
	if group.DependsOn == nil {
		return true
	}
	return len(parentSelectedNames(product, group.DependsOn.ParentGroupIndex, selections)) > 0
}
