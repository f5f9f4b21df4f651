package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pedeaqui/pedeaqui-backend/api/middleware"
	cartsvc "github.com/pedeaqui/pedeaqui-backend/internal/cart"
	"github.com/pedeaqui/pedeaqui-backend/pkg/logger"
)

func cartRouter(svc *cartsvc.Service, logg *logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Route("/v1/cart", func(r chi.Router) {
		r.Use(middleware.CustomerContext(logg))
		r.Get("/", CartGet(svc, logg))
		r.Post("/items", CartAddItem(svc, logg))
		r.Patch("/items/{itemID}", CartUpdateItem(svc, logg))
		r.Delete("/items/{itemID}", CartRemoveItem(svc, logg))
	})
	return r
}

func testCartStack(t *testing.T) (http.Handler, string, string) {
	t.Helper()
	catalogService, conn := testCatalogService(t)
	product := seedBurger(t, conn)
	largeID := optionIDByName(t, conn, "Large")

	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	service := cartsvc.NewService(cartsvc.NewRepository(conn), catalogService, logg)

	return cartRouter(service, logg), product.ID.String(), largeID
}

func addItemPayload(t *testing.T, productID, groupID, optionID string, quantity int) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"product_id": productID,
		"quantity":   quantity,
		"selections": map[string]any{
			groupID: map[string]any{"option_id": optionID},
		},
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return body
}

func TestCartAddItemRequiresIdentity(t *testing.T) {
	router, productID, largeID := testCartStack(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewReader(addItemPayload(t, productID, uuid.NewString(), largeID, 1)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without X-Customer-Id, got %d", rec.Code)
	}
}

func TestCartAddAndFetchFlow(t *testing.T) {
	catalogService, conn := testCatalogService(t)
	product := seedBurger(t, conn)
	largeID := optionIDByName(t, conn, "Large")
	var groupID string
	{
		type row struct{ ID uuid.UUID }
		var r row
		if err := conn.Table("product_groups").Select("id").Where("name = ?", "Size").Scan(&r).Error; err != nil {
			t.Fatalf("group id: %v", err)
		}
		groupID = r.ID.String()
	}

	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	router := cartRouter(cartsvc.NewService(cartsvc.NewRepository(conn), catalogService, logg), logg)
	customerID := uuid.NewString()

	req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewReader(addItemPayload(t, product.ID.String(), groupID, largeID, 2)))
	req.Header.Set("X-Customer-Id", customerID)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}

	getReq := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
	getReq.Header.Set("X-Customer-Id", customerID)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, getReq)

	if getRec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", getRec.Code)
	}

	var envelope struct {
		Data struct {
			Total string `json:"total"`
			Items []struct {
				ID                string `json:"id"`
				Quantity          int    `json:"quantity"`
				UnitPrice         string `json:"unit_price"`
				CustomizationHash string `json:"customization_hash"`
			} `json:"items"`
		} `json:"data"`
	}
	if err := json.NewDecoder(getRec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data.Items) != 1 {
		t.Fatalf("expected one line, got %+v", envelope.Data)
	}
	if envelope.Data.Items[0].UnitPrice != "25.00" || envelope.Data.Total != "50.00" {
		t.Fatalf("unexpected pricing %+v", envelope.Data)
	}
	if envelope.Data.Items[0].CustomizationHash == "" {
		t.Fatal("expected a hash on the customized line")
	}

	// re-adding the same customization merges instead of duplicating
	again := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewReader(addItemPayload(t, product.ID.String(), groupID, largeID, 1)))
	again.Header.Set("X-Customer-Id", customerID)
	againRec := httptest.NewRecorder()
	router.ServeHTTP(againRec, again)
	if againRec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", againRec.Code)
	}

	var merged struct {
		Data struct {
			Items []struct {
				Quantity int `json:"quantity"`
			} `json:"items"`
		} `json:"data"`
	}
	if err := json.NewDecoder(againRec.Body).Decode(&merged); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(merged.Data.Items) != 1 || merged.Data.Items[0].Quantity != 3 {
		t.Fatalf("expected a single merged line with quantity 3, got %+v", merged.Data)
	}
}

func TestCartAddItemRejectsIncompleteSelection(t *testing.T) {
	router, productID, _ := testCartStack(t)

	body, _ := json.Marshal(map[string]any{
		"product_id": productID,
		"quantity":   1,
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewReader(body))
	req.Header.Set("X-Customer-Id", uuid.NewString())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Error struct {
			Code    string   `json:"code"`
			Details []string `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Error.Code != "VALIDATION_ERROR" {
		t.Fatalf("unexpected code %s", envelope.Error.Code)
	}
	if len(envelope.Error.Details) != 1 || envelope.Error.Details[0] != "Select one option in Size" {
		t.Fatalf("unexpected details %v", envelope.Error.Details)
	}
}

func TestCartGetWithoutCart(t *testing.T) {
	router, _, _ := testCartStack(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
	req.Header.Set("X-Customer-Id", uuid.NewString())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 with no active cart, got %d", rec.Code)
	}
}
