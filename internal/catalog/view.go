// Package catalog serves read-side product and store data: repository access
// with ordered option groups plus a cached product view the customization
// engine consumes.
package catalog

import (
	"github.com/google/uuid"

	"github.com/pedeaqui/pedeaqui-backend/internal/customize"
	"github.com/pedeaqui/pedeaqui-backend/pkg/db/models"
	"github.com/pedeaqui/pedeaqui-backend/pkg/types"
)

// ProductView is the engine-facing snapshot of a catalog product. It is what
// gets cached: the full group/option tree flattened into the read-only form
// the customization engine operates on.
type ProductView struct {
	StoreID uuid.UUID `json:"store_id"`
	Active  bool      `json:"active"`
	customize.Product
}

// BuildProductView maps a loaded product row into the engine's read model.
// Groups must already be ordered by position and options by their position
// inside each group; the repository guarantees that on load.
func BuildProductView(product models.Product) ProductView {
	groups := make([]customize.Group, 0, len(product.Groups))
	for _, group := range product.Groups {
		options := make([]customize.Option, 0, len(group.Options))
		for _, option := range group.Options {
			mapped := customize.Option{
				ID:          option.ID.String(),
				Name:        option.Name,
				Available:   option.Available,
				Price:       option.Price,
				PriceMatrix: option.PriceMatrix,
			}
			if option.Description != nil {
				mapped.Description = *option.Description
			}
			options = append(options, mapped)
		}
		groups = append(groups, customize.Group{
			ID:       group.ID.String(),
			Name:     group.Name,
			Type:     group.Type,
			Required: group.Required,
			Bounds: types.SelectionBounds{
				MinSelections: group.MinSelections,
				MaxSelections: group.MaxSelections,
			},
			Options:   options,
			DependsOn: group.DependsOn,
		})
	}

	return ProductView{
		StoreID: product.StoreID,
		Active:  product.IsActive,
		Product: customize.Product{
			ID:        product.ID,
			Name:      product.Name,
			BasePrice: product.BasePrice,
			Groups:    groups,
		},
	}
}
