package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pedeaqui/pedeaqui-backend/api/middleware"
	"github.com/pedeaqui/pedeaqui-backend/api/responses"
	"github.com/pedeaqui/pedeaqui-backend/api/validators"
	cartsvc "github.com/pedeaqui/pedeaqui-backend/internal/cart"
	"github.com/pedeaqui/pedeaqui-backend/internal/customize"
	"github.com/pedeaqui/pedeaqui-backend/pkg/db/models"
	"github.com/pedeaqui/pedeaqui-backend/pkg/enums"
	pkgerrors "github.com/pedeaqui/pedeaqui-backend/pkg/errors"
	"github.com/pedeaqui/pedeaqui-backend/pkg/logger"
	"github.com/pedeaqui/pedeaqui-backend/pkg/types"
)

func customerFromRequest(r *http.Request) (uuid.UUID, error) {
	customerID, ok := middleware.CustomerIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "customer identity missing")
	}
	return customerID, nil
}

// CartGet returns the customer's active cart.
func CartGet(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, err := customerFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		record, err := svc.GetActiveCart(r.Context(), customerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(record))
	}
}

// CartAddItem prices a customization and upserts it into the cart.
func CartAddItem(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, err := customerFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		record, err := svc.AddItem(r.Context(), customerID, cartsvc.AddItemInput{
			ProductID:    payload.ProductID,
			Quantity:     payload.Quantity,
			Selections:   payload.Selections,
			Observations: payload.Observations,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, newCartResponse(record))
	}
}

// CartUpdateItem edits one cart line (quantity, customization, note).
func CartUpdateItem(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, err := customerFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid item id"))
			return
		}

		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		record, err := svc.UpdateItem(r.Context(), customerID, itemID, cartsvc.UpdateItemInput{
			Quantity:     payload.Quantity,
			Selections:   payload.Selections,
			Observations: payload.Observations,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(record))
	}
}

// CartRemoveItem deletes one cart line.
func CartRemoveItem(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, err := customerFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid item id"))
			return
		}

		record, err := svc.RemoveItem(r.Context(), customerID, itemID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(record))
	}
}

// CartSetFulfillment records the delivery and payment choices.
func CartSetFulfillment(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, err := customerFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload fulfillmentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		record, err := svc.SetFulfillment(r.Context(), customerID, cartsvc.FulfillmentInput{
			DeliveryMethod: enums.DeliveryMethod(payload.DeliveryMethod),
			PaymentMethod:  enums.PaymentMethod(payload.PaymentMethod),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(record))
	}
}

type addCartItemRequest struct {
	ProductID    uuid.UUID               `json:"product_id" validate:"required"`
	Quantity     int                     `json:"quantity" validate:"required,min=1"`
	Selections   customize.RawSelections `json:"selections"`
	Observations string                  `json:"observations" validate:"omitempty,max=500"`
}

type updateCartItemRequest struct {
	Quantity     int                     `json:"quantity" validate:"min=0"`
	Selections   customize.RawSelections `json:"selections,omitempty"`
	Observations *string                 `json:"observations,omitempty" validate:"omitempty,max=500"`
}

type fulfillmentRequest struct {
	DeliveryMethod string `json:"delivery_method" validate:"required,oneof=delivery pickup"`
	PaymentMethod  string `json:"payment_method" validate:"required,oneof=pix card cash"`
}

type cartResponse struct {
	ID             uuid.UUID          `json:"id"`
	StoreID        uuid.UUID          `json:"store_id"`
	Status         string             `json:"status"`
	DeliveryMethod *string            `json:"delivery_method,omitempty"`
	PaymentMethod  *string            `json:"payment_method,omitempty"`
	Subtotal       string             `json:"subtotal"`
	Total          string             `json:"total"`
	Items          []cartItemResponse `json:"items"`
}

type cartItemResponse struct {
	ID                uuid.UUID            `json:"id"`
	ProductID         uuid.UUID            `json:"product_id"`
	ProductName       string               `json:"product_name"`
	Quantity          int                  `json:"quantity"`
	UnitPrice         string               `json:"unit_price"`
	LineTotal         string               `json:"line_total"`
	CustomizationHash string               `json:"customization_hash"`
	Customization     *types.Customization `json:"customization,omitempty"`
}

func newCartResponse(record models.CartRecord) cartResponse {
	items := make([]cartItemResponse, 0, len(record.Items))
	for _, item := range record.Items {
		items = append(items, cartItemResponse{
			ID:                item.ID,
			ProductID:         item.ProductID,
			ProductName:       item.ProductName,
			Quantity:          item.Quantity,
			UnitPrice:         item.UnitPrice.StringFixed(2),
			LineTotal:         item.LineTotal.StringFixed(2),
			CustomizationHash: item.CustomizationHash,
			Customization:     item.Customization,
		})
	}

	out := cartResponse{
		ID:       record.ID,
		StoreID:  record.StoreID,
		Status:   record.Status.String(),
		Subtotal: record.Subtotal.StringFixed(2),
		Total:    record.Total.StringFixed(2),
		Items:    items,
	}
	if record.DeliveryMethod != nil {
		method := record.DeliveryMethod.String()
		out.DeliveryMethod = &method
	}
	if record.PaymentMethod != nil {
		method := record.PaymentMethod.String()
		out.PaymentMethod = &method
	}
	return out
}
