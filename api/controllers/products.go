package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pedeaqui/pedeaqui-backend/api/responses"
	"github.com/pedeaqui/pedeaqui-backend/api/validators"
	"github.com/pedeaqui/pedeaqui-backend/internal/catalog"
	"github.com/pedeaqui/pedeaqui-backend/internal/customize"
	pkgerrors "github.com/pedeaqui/pedeaqui-backend/pkg/errors"
	"github.com/pedeaqui/pedeaqui-backend/pkg/logger"
	"github.com/pedeaqui/pedeaqui-backend/pkg/types"
)

// ProductDetail returns the full customization tree of one product.
func ProductDetail(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		productID, err := uuid.Parse(chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		view, err := svc.ActiveProductView(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newProductDetailResponse(view))
	}
}

// CustomizationQuote reprices a selection snapshot without touching the
// cart: total, violations, per-group effective bounds, per-option effective
// prices and the customization hash.
func CustomizationQuote(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		productID, err := uuid.Parse(chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		var payload quoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.ActiveProductView(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		selections := payload.Selections.Coerce(view.Product)
		quote := customize.BuildQuote(view.Product, selections, payload.Quantity, payload.Observations)

		responses.WriteSuccess(w, newQuoteResponse(quote))
	}
}

type quoteRequest struct {
	Selections   customize.RawSelections `json:"selections"`
	Quantity     int                     `json:"quantity" validate:"required,min=1"`
	Observations string                  `json:"observations" validate:"omitempty,max=500"`
}

type quoteResponse struct {
	UnitPrice  string                 `json:"unit_price"`
	TotalPrice string                 `json:"total_price"`
	Valid      bool                   `json:"valid"`
	Violations []string               `json:"violations,omitempty"`
	Groups     []customize.GroupQuote `json:"groups"`
	Hash       string                 `json:"customization_hash"`
}

func newQuoteResponse(quote customize.Quote) quoteResponse {
	return quoteResponse{
		UnitPrice:  quote.UnitPrice.StringFixed(2),
		TotalPrice: quote.TotalPrice.StringFixed(2),
		Valid:      len(quote.Violations) == 0,
		Violations: customize.Messages(quote.Violations),
		Groups:     quote.Groups,
		Hash:       quote.Hash,
	}
}

type productDetailResponse struct {
	ID        uuid.UUID            `json:"id"`
	StoreID   uuid.UUID            `json:"store_id"`
	Name      string               `json:"name"`
	BasePrice string               `json:"base_price"`
	Groups    []productGroupDetail `json:"groups"`
}

type productGroupDetail struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Type      string                 `json:"type"`
	Required  bool                   `json:"required"`
	Bounds    types.SelectionBounds  `json:"bounds"`
	DependsOn *types.GroupDependency `json:"depends_on,omitempty"`
	Options   []productOptionDetail  `json:"options"`
}

type productOptionDetail struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description,omitempty"`
	Available   bool                     `json:"available"`
	Price       string                   `json:"price"`
	PriceMatrix *types.OptionPriceMatrix `json:"price_matrix,omitempty"`
}

func newProductDetailResponse(view catalog.ProductView) productDetailResponse {
	groups := make([]productGroupDetail, 0, len(view.Groups))
	for _, group := range view.Groups {
		options := make([]productOptionDetail, 0, len(group.Options))
		for _, option := range group.Options {
			options = append(options, productOptionDetail{
				ID:          option.ID,
				Name:        option.Name,
				Description: option.Description,
				Available:   option.Available,
				Price:       option.Price.StringFixed(2),
				PriceMatrix: option.PriceMatrix,
			})
		}
		groups = append(groups, productGroupDetail{
			ID:        group.ID,
			Name:      group.Name,
			Type:      group.Type.String(),
			Required:  group.Required,
			Bounds:    group.Bounds,
			DependsOn: group.DependsOn,
			Options:   options,
		})
	}
	return productDetailResponse{
		ID:        view.Product.ID,
		StoreID:   view.StoreID,
		Name:      view.Product.Name,
		BasePrice: view.BasePrice.StringFixed(2),
		Groups:    groups,
	}
}
