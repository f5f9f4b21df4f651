package customize

import (
	"strings"

	"github.com/pedeaqui/pedeaqui-backend/pkg/enums"
	"github.com/pedeaqui/pedeaqui-backend/pkg/types"
)

// maxObservationsLen caps the free-text note attached to a customization.
const maxObservationsLen = 500

// BuildCustomization freezes the current selections into the persisted
// customization form. Groups with empty selections are omitted entirely so
// the hash stays stable across products with different optional groups, and
// every selected entry records its effective price at confirmation time.
// Observations is trimmed, capped and stored outside the hashed structure.
func BuildCustomization(product Product, selections Selections, observations string) types.Customization {
	groups := map[string]types.CustomizationGroup{}

	for _, group := range product.Groups {
		value := selections.Get(group)
		if value.IsEmpty() {
			continue
		}

		selected := make([]types.SelectedOption, 0, value.Count())
		for _, option := range group.Options {
			if !value.Contains(option.ID) {
				continue
			}
			entry := types.SelectedOption{
				OptionID: option.ID,
				Name:     option.Name,
				Price:    EffectivePrice(product, option, selections),
			}
			if group.Type == enums.GroupTypeQuantityChoice {
				qty := value.Quantity(option.ID)
				entry.Quantity = &qty
			}
			selected = append(selected, entry)
		}
		if len(selected) == 0 {
			continue
		}

		groups[group.ID] = types.CustomizationGroup{
			GroupName: group.Name,
			Type:      group.Type,
			Selected:  selected,
		}
	}

	customization := types.Customization{}
	if len(groups) > 0 {
		customization.Groups = groups
	}
	if trimmed := trimObservations(observations); trimmed != "" {
		customization.Observations = trimmed
	}
	return customization
}

func trimObservations(observations string) string {
	trimmed := strings.TrimSpace(observations)
	if len(trimmed) <= maxObservationsLen {
		return trimmed
	}
	runes := []rune(trimmed)
	if len(runes) <= maxObservationsLen {
		return trimmed
	}
	return string(runes[:maxObservationsLen])
}
