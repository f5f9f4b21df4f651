package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pedeaqui/pedeaqui-backend/api/responses"
	"github.com/pedeaqui/pedeaqui-backend/internal/catalog"
	"github.com/pedeaqui/pedeaqui-backend/pkg/db/models"
	pkgerrors "github.com/pedeaqui/pedeaqui-backend/pkg/errors"
	"github.com/pedeaqui/pedeaqui-backend/pkg/logger"
)

// StoresByCity lists open stores based in the queried city or delivering to
// it.
func StoresByCity(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		city := r.URL.Query().Get("city")
		stores, err := svc.StoresByCity(r.Context(), city)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out := make([]storeResponse, 0, len(stores))
		for _, store := range stores {
			out = append(out, newStoreResponse(store))
		}
		responses.WriteSuccess(w, out)
	}
}

// StoreProducts lists the active listings of one store.
func StoreProducts(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		storeID, err := uuid.Parse(chi.URLParam(r, "storeID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid store id"))
			return
		}

		products, err := svc.StoreProducts(r.Context(), storeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out := make([]productListingResponse, 0, len(products))
		for _, product := range products {
			out = append(out, newProductListingResponse(product))
		}
		responses.WriteSuccess(w, out)
	}
}

type storeResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	City           string    `json:"city"`
	DeliveryCities []string  `json:"delivery_cities"`
	PaymentMethods []string  `json:"payment_methods"`
	IsOpen         bool      `json:"is_open"`
}

func newStoreResponse(store models.Store) storeResponse {
	return storeResponse{
		ID:             store.ID,
		Name:           store.Name,
		Slug:           store.Slug,
		City:           store.City,
		DeliveryCities: store.DeliveryCities,
		PaymentMethods: store.PaymentMethods,
		IsOpen:         store.IsOpen,
	}
}

type productListingResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	BasePrice     string    `json:"base_price"`
	IsAssemblable bool      `json:"is_assemblable"`
}

func newProductListingResponse(product models.Product) productListingResponse {
	return productListingResponse{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		BasePrice:     product.BasePrice.StringFixed(2),
		IsAssemblable: product.IsAssemblable,
	}
}
