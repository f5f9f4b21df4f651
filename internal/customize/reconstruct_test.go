package customize

import (
	"testing"

	"github.com/pedeaqui/pedeaqui-backend/pkg/types"
)

func TestReconstructRoundTripKeepsHash(t *testing.T) {
	product := burgerProduct()
	selections := selectionsWith(map[string]Value{
		"g-size":     SingleChoice("o-large"),
		"g-extras":   MultiChoice("o-b", "o-a"),
		"g-toppings": QuantityChoice(map[string]int{"o-x": 2}),
	})

	saved := BuildCustomization(product, selections, "note")
	rebuilt := BuildCustomization(product, ReconstructSelections(product, saved), "note")

	if Hash(saved) != Hash(rebuilt) {
		t.Fatalf("round trip changed the hash: %q vs %q", Hash(saved), Hash(rebuilt))
	}
}

func TestReconstructMissingGroupsDefaultToEmpty(t *testing.T) {
	product := burgerProduct()
	saved := types.Customization{
		Groups: map[string]types.CustomizationGroup{
			"g-size": {
				GroupName: "Size",
				Type:      product.Groups[0].Type,
				Selected:  []types.SelectedOption{{OptionID: "o-small", Name: "Small"}},
			},
		},
	}

	selections := ReconstructSelections(product, saved)
	if len(selections) != len(product.Groups) {
		t.Fatalf("expected an entry per group, got %d", len(selections))
	}
	if !selections["g-extras"].IsEmpty() || !selections["g-toppings"].IsEmpty() {
		t.Fatal("groups absent from the stored customization must start empty")
	}
}

func TestReconstructNilQuantityDefaultsToOne(t *testing.T) {
	product := burgerProduct()
	saved := types.Customization{
		Groups: map[string]types.CustomizationGroup{
			"g-toppings": {
				GroupName: "Toppings",
				Type:      product.Groups[2].Type,
				Selected:  []types.SelectedOption{{OptionID: "o-x", Name: "Pickles"}},
			},
		},
	}

	selections := ReconstructSelections(product, saved)
	if qty := selections["g-toppings"].Quantity("o-x"); qty != 1 {
		t.Fatalf("expected legacy entries without a quantity to restore as 1, got %d", qty)
	}
}

func TestReconstructDropsRemovedOptions(t *testing.T) {
	product := burgerProduct()
	saved := types.Customization{
		Groups: map[string]types.CustomizationGroup{
			"g-extras": {
				GroupName: "Extras",
				Type:      product.Groups[1].Type,
				Selected: []types.SelectedOption{
					{OptionID: "o-a", Name: "Bacon"},
					{OptionID: "o-discontinued", Name: "Foie Gras"},
				},
			},
		},
	}

	extras := ReconstructSelections(product, saved)["g-extras"]
	if !extras.Contains("o-a") || extras.Count() != 1 {
		t.Fatalf("expected only surviving options, got %v", extras.Multi())
	}
}

func TestReconstructFollowsCurrentGroupType(t *testing.T) {
	product := burgerProduct()
	// group was multi-choice when saved; it is quantity-choice now
	saved := types.Customization{
		Groups: map[string]types.CustomizationGroup{
			"g-toppings": {
				GroupName: "Toppings",
				Type:      product.Groups[1].Type,
				Selected:  []types.SelectedOption{{OptionID: "o-y", Name: "Onion Rings"}},
			},
		},
	}

	value := ReconstructSelections(product, saved)["g-toppings"]
	if value.Type() != product.Groups[2].Type {
		t.Fatalf("expected the group's current type, got %s", value.Type())
	}
	if value.Quantity("o-y") != 1 {
		t.Fatalf("expected the entry rebuilt as quantity 1, got %d", value.Quantity("o-y"))
	}
}

func TestCoerceDropsInvalidRawInput(t *testing.T) {
	product := burgerProduct()
	unknown := "o-nope"
	raw := RawSelections{
		"g-size":   {OptionID: &unknown},
		"g-extras": {OptionIDs: []string{"o-a", "o-a", "o-ghost", "o-b"}},
		"g-toppings": {Quantities: map[string]int{
			"o-x":     2,
			"o-y":     0,
			"o-ghost": 5,
		}},
		"g-unknown": {OptionIDs: []string{"o-a"}},
	}

	selections := raw.Coerce(product)

	if !selections["g-size"].IsEmpty() {
		t.Fatal("unknown single-choice option must coerce to empty")
	}
	extras := selections["g-extras"]
	if extras.Count() != 2 || !extras.Contains("o-a") || !extras.Contains("o-b") {
		t.Fatalf("expected deduped known options, got %v", extras.Multi())
	}
	toppings := selections["g-toppings"]
	if toppings.Quantity("o-x") != 2 || toppings.Count() != 2 {
		t.Fatalf("expected only o-x:2 to survive, got %v", toppings.Quantities())
	}
	if _, ok := selections["g-unknown"]; ok {
		t.Fatal("unknown group ids must not appear")
	}
}

func TestCoerceDropsUnavailableOptions(t *testing.T) {
	product := burgerProduct()
	product.Groups[0].Options[1].Available = false // Large
	product.Groups[1].Options[0].Available = false // Bacon
	product.Groups[2].Options[0].Available = false // Pickles
	soldOut := "o-large"

	raw := RawSelections{
		"g-size":     {OptionID: &soldOut},
		"g-extras":   {OptionIDs: []string{"o-a", "o-b"}},
		"g-toppings": {Quantities: map[string]int{"o-x": 2, "o-y": 1}},
	}
	selections := raw.Coerce(product)

	if !selections["g-size"].IsEmpty() {
		t.Fatal("unavailable single-choice option must coerce to empty")
	}
	extras := selections["g-extras"]
	if extras.Count() != 1 || extras.Contains("o-a") || !extras.Contains("o-b") {
		t.Fatalf("expected only the available extra to survive, got %v", extras.Multi())
	}
	toppings := selections["g-toppings"]
	if toppings.Quantity("o-x") != 0 || toppings.Quantity("o-y") != 1 {
		t.Fatalf("expected only available toppings, got %v", toppings.Quantities())
	}
}

func TestReconstructKeepsUnavailableHistoricalOptions(t *testing.T) {
	product := burgerProduct()
	saved := BuildCustomization(product, selectionsWith(map[string]Value{
		"g-size":   SingleChoice("o-large"),
		"g-extras": MultiChoice("o-a"),
	}), "")

	// Bacon ran out after the order was placed; the stored line still shows it
	product.Groups[1].Options[0].Available = false

	selections := ReconstructSelections(product, saved)
	if !selections["g-extras"].Contains("o-a") {
		t.Fatal("historical entries must survive availability changes")
	}
}

func TestCoerceWrongShapeDegradesToEmpty(t *testing.T) {
	product := burgerProduct()
	raw := RawSelections{
		"g-size": {OptionIDs: []string{"o-large"}}, // list sent for a single-choice group
	}

	if !raw.Coerce(product)["g-size"].IsEmpty() {
		t.Fatal("expected mismatched shape to coerce to the empty default")
	}
}
