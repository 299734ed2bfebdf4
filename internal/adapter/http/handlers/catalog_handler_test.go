package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront_checkout/internal/adapter/http/dto/response"
	"storefront_checkout/internal/adapter/http/handlers/mocks"
	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_ListProducts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("renders stock flags", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockICatalogStore(ctrl)
		h := NewCatalogHandler(store)

		r := gin.New()
		r.GET("/v1/products", h.ListProducts)

		store.EXPECT().Snapshot().Return(usecase.CatalogSnapshot{Products: []entities.Product{
			{ID: "PROD-005", Price: 2100000, Stock: 3},
			{ID: "PROD-008", Price: 4500000, Stock: 0},
			{ID: "PROD-010", Price: 85000, Stock: 30},
		}})

		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.CatalogResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body.Products) != 3 {
			t.Fatalf("expected 3 products, got %d", len(body.Products))
		}
		if !body.Products[0].LowStock || body.Products[0].OutOfStock {
			t.Fatalf("expected low stock flag, got %+v", body.Products[0])
		}
		if !body.Products[1].OutOfStock || body.Products[1].LowStock {
			t.Fatalf("expected out of stock flag, got %+v", body.Products[1])
		}
		if body.Products[2].LowStock || body.Products[2].InstallmentPrice != 28333 {
			t.Fatalf("unexpected product %+v", body.Products[2])
		}
	})

	t.Run("loading with error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockICatalogStore(ctrl)
		h := NewCatalogHandler(store)

		r := gin.New()
		r.GET("/v1/products", h.ListProducts)

		store.EXPECT().Snapshot().Return(usecase.CatalogSnapshot{Error: "catalog unavailable"})

		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.CatalogResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Products == nil || len(body.Products) != 0 || body.Error != "catalog unavailable" {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}

func TestCatalogHandler_ReloadProducts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockICatalogStore(ctrl)
	h := NewCatalogHandler(store)

	r := gin.New()
	r.POST("/v1/products/reload", h.ReloadProducts)

	gomock.InOrder(
		store.EXPECT().Reload(),
		store.EXPECT().Snapshot().Return(usecase.CatalogSnapshot{Loading: true}),
	)

	req := httptest.NewRequest(http.MethodPost, "/v1/products/reload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", w.Code)
	}
	var body response.CatalogResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if !body.Loading {
		t.Fatalf("expected loading flag")
	}
}
