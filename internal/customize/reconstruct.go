package customize

import (
	"github.com/pedeaqui/pedeaqui-backend/pkg/enums"
	"github.com/pedeaqui/pedeaqui-backend/pkg/types"
)

// ReconstructSelections rebuilds a selection state from a stored
// customization for the edit flow. The policy is deliberately lenient so
// that editing an old order survives later catalog edits: stored group IDs
// absent from the product are ignored, stored option IDs absent from their
// group are skipped, and groups without a stored entry start at their empty
// default. Shapes are rebuilt from the group's *current* type.
func ReconstructSelections(product Product, saved types.Customization) Selections {
	selections := make(Selections, len(product.Groups))

	for _, group := range product.Groups {
		entry, ok := saved.Groups[group.ID]
		if !ok {
			selections[group.ID] = EmptyValue(group.Type)
			continue
		}

		switch group.Type {
		case enums.GroupTypeSingleChoice:
			selections[group.ID] = EmptyValue(group.Type)
			for _, selected := range entry.Selected {
				if _, ok := group.OptionByID(selected.OptionID); ok {
					selections[group.ID] = SingleChoice(selected.OptionID)
					break
				}
			}
		case enums.GroupTypeMultiChoice:
			var ids []string
			for _, selected := range entry.Selected {
				if _, ok := group.OptionByID(selected.OptionID); ok {
					ids = append(ids, selected.OptionID)
				}
			}
			selections[group.ID] = MultiChoice(ids...)
		case enums.GroupTypeQuantityChoice:
			counts := map[string]int{}
			for _, selected := range entry.Selected {
				if _, ok := group.OptionByID(selected.OptionID); !ok {
					continue
				}
				qty := 1
				if selected.Quantity != nil {
					qty = *selected.Quantity
				}
				if qty > 0 {
					counts[selected.OptionID] += qty
				}
			}
			selections[group.ID] = QuantityChoice(counts)
		default:
			selections[group.ID] = EmptyValue(group.Type)
		}
	}

	return selections
}
