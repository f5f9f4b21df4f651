package customize

import (
	"testing"

	"github.com/pedeaqui/pedeaqui-backend/pkg/types"
)

func TestHashIsDeterministic(t *testing.T) {
	product := burgerProduct()
	selections := selectionsWith(map[string]Value{
		"g-size":   SingleChoice("o-large"),
		"g-extras": MultiChoice("o-a", "o-b"),
	})

	customization := BuildCustomization(product, selections, "")
	first := Hash(customization)
	for i := 0; i < 10; i++ {
		if got := Hash(customization); got != first {
			t.Fatalf("hash drifted on run %d: %q vs %q", i, got, first)
		}
	}
}

func TestHashIgnoresSelectionOrder(t *testing.T) {
	product := burgerProduct()

	forward := BuildCustomization(product, selectionsWith(map[string]Value{
		"g-size":   SingleChoice("o-large"),
		"g-extras": MultiChoice("o-a", "o-b"),
	}), "")
	reversed := BuildCustomization(product, selectionsWith(map[string]Value{
		"g-size":   SingleChoice("o-large"),
		"g-extras": MultiChoice("o-b", "o-a"),
	}), "")

	if Hash(forward) != Hash(reversed) {
		t.Fatalf("expected order-independent hash, got %q vs %q", Hash(forward), Hash(reversed))
	}
}

func TestHashIgnoresObservations(t *testing.T) {
	product := burgerProduct()
	selections := selectionsWith(map[string]Value{
		"g-size": SingleChoice("o-small"),
	})

	plain := Hash(BuildCustomization(product, selections, ""))
	noted := Hash(BuildCustomization(product, selections, "no onions please"))

	if plain != noted {
		t.Fatalf("observations leaked into the hash: %q vs %q", plain, noted)
	}
}

func TestHashDistinguishesDifferentSelections(t *testing.T) {
	product := burgerProduct()
	base := selectionsWith(map[string]Value{
		"g-size":   SingleChoice("o-large"),
		"g-extras": MultiChoice("o-a"),
	})
	baseHash := Hash(BuildCustomization(product, base, ""))

	variants := map[string]Selections{
		"differentOption": selectionsWith(map[string]Value{
			"g-size":   SingleChoice("o-large"),
			"g-extras": MultiChoice("o-b"),
		}),
		"differentSize": selectionsWith(map[string]Value{
			"g-size":   SingleChoice("o-small"),
			"g-extras": MultiChoice("o-a"),
		}),
		"differentQuantity": selectionsWith(map[string]Value{
			"g-size":     SingleChoice("o-large"),
			"g-extras":   MultiChoice("o-a"),
			"g-toppings": QuantityChoice(map[string]int{"o-x": 2}),
		}),
	}
	for name, selections := range variants {
		if got := Hash(BuildCustomization(product, selections, "")); got == baseHash {
			t.Fatalf("%s: expected a distinct hash, both were %q", name, got)
		}
	}
}

func TestHashEmptyCustomizationSentinel(t *testing.T) {
	if got := Hash(types.Customization{}); got != EmptyHash {
		t.Fatalf("expected the empty sentinel, got %q", got)
	}

	product := burgerProduct()
	empty := BuildCustomization(product, selectionsWith(nil), "   ")
	if got := Hash(empty); got != EmptyHash {
		t.Fatalf("expected empty selections to hash to the sentinel, got %q", got)
	}
}

func TestHashShape(t *testing.T) {
	product := burgerProduct()
	customization := BuildCustomization(product, selectionsWith(map[string]Value{
		"g-size": SingleChoice("o-large"),
	}), "")

	hash := Hash(customization)
	if len(hash) != hashWidth {
		t.Fatalf("expected a %d-char digest, got %q", hashWidth, hash)
	}
	for _, r := range hash {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'z') {
			t.Fatalf("unexpected character %q in %q", r, hash)
		}
	}
}

func TestHashQuantityIsSignificant(t *testing.T) {
	product := burgerProduct()
	one := BuildCustomization(product, selectionsWith(map[string]Value{
		"g-size":     SingleChoice("o-small"),
		"g-toppings": QuantityChoice(map[string]int{"o-x": 1}),
	}), "")
	two := BuildCustomization(product, selectionsWith(map[string]Value{
		"g-size":     SingleChoice("o-small"),
		"g-toppings": QuantityChoice(map[string]int{"o-x": 2}),
	}), "")

	if Hash(one) == Hash(two) {
		t.Fatal("expected quantity to change the hash")
	}
}
