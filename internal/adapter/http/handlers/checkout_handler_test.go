package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront_checkout/internal/adapter/http/handlers/mocks"
	"storefront_checkout/internal/adapter/http/middleware"
	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/domain/validation"
	"storefront_checkout/internal/usecase"
	"storefront_checkout/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCheckoutRouter(h *CheckoutHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1/checkout", middleware.Session())
	g.GET("", h.GetCheckout)
	g.POST("/product", h.SelectProduct)
	g.PATCH("/details", h.UpdateDetails)
	g.POST("/details/confirm", h.ConfirmDetails)
	g.GET("/summary", h.GetSummary)
	g.POST("/pay", h.ConfirmPayment)
	g.POST("/modify", h.ModifyDetails)
	g.GET("/status", h.GetStatus)
	g.POST("/home", h.ReturnHome)
	g.POST("/retry", h.Retry)
	return r
}

func doCheckoutRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(middleware.SessionHeader, "sess-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeHTTPError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestCheckoutHandler_GetCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICheckoutUseCase(ctrl)
	r := newCheckoutRouter(NewCheckoutHandler(uc))

	draft := entities.NewCheckoutDraft()
	draft.CardNumber = "4111111111111111"
	draft.CardCVV = "123"
	uc.EXPECT().GetCheckout(gomock.Any(), "sess-1").Return(usecase.CheckoutView{
		SessionID:   "sess-1",
		Screen:      usecase.ScreenCatalog,
		Draft:       draft,
		Transaction: entities.NewTransactionState(),
	}, nil)

	w := doCheckoutRequest(r, http.MethodGet, "/v1/checkout", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get(middleware.SessionHeader); got != "sess-1" {
		t.Fatalf("expected session header echoed, got %q", got)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("4111111111111111")) || bytes.Contains(w.Body.Bytes(), []byte(`"123"`)) {
		t.Fatalf("card secrets leaked in body %s", w.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["screen"] != "catalog" {
		t.Fatalf("expected catalog screen, got %v", body["screen"])
	}
}

func TestCheckoutHandler_GetCheckoutStorageUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICheckoutUseCase(ctrl)
	r := newCheckoutRouter(NewCheckoutHandler(uc))

	uc.EXPECT().GetCheckout(gomock.Any(), "sess-1").Return(usecase.CheckoutView{}, fmt.Errorf("%w: timeout", usecase.ErrDraftStorageUnavailable))

	w := doCheckoutRequest(r, http.MethodGet, "/v1/checkout", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	if body := decodeHTTPError(t, w); body.Code != "CHECKOUT_STORAGE_UNAVAILABLE" {
		t.Fatalf("unexpected code %s", body.Code)
	}
}

func TestCheckoutHandler_SelectProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		w := doCheckoutRequest(r, http.MethodPost, "/v1/checkout/product", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeHTTPError(t, w); body.Code != "INVALID_CHECKOUT_INPUT" {
			t.Fatalf("unexpected code %s", body.Code)
		}
	})

	t.Run("missing product id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		w := doCheckoutRequest(r, http.MethodPost, "/v1/checkout/product", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("mapped errors", func(t *testing.T) {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{"not found", usecase.ErrProductNotFound, http.StatusNotFound, "PRODUCT_NOT_FOUND"},
			{"out of stock", usecase.ErrProductOutOfStock, http.StatusConflict, "OUT_OF_STOCK"},
			{"payment in progress", usecase.ErrPaymentInProgress, http.StatusConflict, "PAYMENT_IN_PROGRESS"},
			{"unexpected", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockICheckoutUseCase(ctrl)
				r := newCheckoutRouter(NewCheckoutHandler(uc))

				uc.EXPECT().SelectProduct(gomock.Any(), "sess-1", "PROD-001").Return(usecase.CheckoutView{}, tc.err)

				w := doCheckoutRequest(r, http.MethodPost, "/v1/checkout/product", `{"product_id":" PROD-001 "}`)
				if w.Code != tc.status {
					t.Fatalf("expected %d, got %d", tc.status, w.Code)
				}
				if body := decodeHTTPError(t, w); body.Code != tc.code {
					t.Fatalf("expected code %s, got %s", tc.code, body.Code)
				}
			})
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		draft := entities.NewCheckoutDraft()
		draft.CurrentStep = entities.CheckoutStepDetails
		draft.ProductID = "PROD-001"
		draft.ProductPrice = 3200000
		uc.EXPECT().SelectProduct(gomock.Any(), "sess-1", "PROD-001").Return(usecase.CheckoutView{
			SessionID:   "sess-1",
			Screen:      usecase.ScreenDetails,
			Draft:       draft,
			Transaction: entities.NewTransactionState(),
		}, nil)

		w := doCheckoutRequest(r, http.MethodPost, "/v1/checkout/product", `{"product_id":"PROD-001"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["screen"] != "details" {
			t.Fatalf("expected details screen, got %v", body["screen"])
		}
	})
}

func TestCheckoutHandler_UpdateDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		w := doCheckoutRequest(r, http.MethodPatch, "/v1/checkout/details", `{"delivery_email":"not-an-email"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty body rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		w := doCheckoutRequest(r, http.MethodPatch, "/v1/checkout/details", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("patch forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().UpdateDetails(gomock.Any(), "sess-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, patch entities.CheckoutPatch) (usecase.CheckoutView, error) {
				if patch.DeliveryCity == nil || *patch.DeliveryCity != "Bogotá" {
					t.Fatalf("expected delivery city in patch, got %+v", patch)
				}
				if patch.CardNumber != nil {
					t.Fatalf("absent field must stay nil")
				}
				return usecase.CheckoutView{SessionID: "sess-1", Screen: usecase.ScreenDetails}, nil
			})

		w := doCheckoutRequest(r, http.MethodPatch, "/v1/checkout/details", `{"delivery_city":"Bogotá"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("wrong step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().UpdateDetails(gomock.Any(), "sess-1", gomock.Any()).Return(usecase.CheckoutView{}, usecase.ErrInvalidCheckoutStep)

		w := doCheckoutRequest(r, http.MethodPatch, "/v1/checkout/details", `{"delivery_city":"Cali"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeHTTPError(t, w); body.Code != "INVALID_STEP" {
			t.Fatalf("unexpected code %s", body.Code)
		}
	})
}

func TestCheckoutHandler_ConfirmDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body is an empty patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().ConfirmDetails(gomock.Any(), "sess-1", entities.CheckoutPatch{}).Return(usecase.CheckoutView{SessionID: "sess-1", Screen: usecase.ScreenSummary}, nil)

		w := doCheckoutRequest(r, http.MethodPost, "/v1/checkout/details/confirm", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("validation fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().ConfirmDetails(gomock.Any(), "sess-1", gomock.Any()).Return(usecase.CheckoutView{}, &usecase.DetailsValidationError{
			Fields: validation.ErrorSet{validation.FieldDeliveryPhone: "Invalid phone"},
		})

		w := doCheckoutRequest(r, http.MethodPost, "/v1/checkout/details/confirm", `{"delivery_phone":"123"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		body := decodeHTTPError(t, w)
		if body.Code != "VALIDATION_FAILED" || body.Fields["delivery_phone"] != "Invalid phone" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("tokenization failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().ConfirmDetails(gomock.Any(), "sess-1", gomock.Any()).Return(usecase.CheckoutView{}, &usecase.PaymentError{Message: "card_number: invalid"})

		w := doCheckoutRequest(r, http.MethodPost, "/v1/checkout/details/confirm", "")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if body := decodeHTTPError(t, w); body.Message != "card_number: invalid" {
			t.Fatalf("expected gateway message, got %q", body.Message)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().ConfirmDetails(gomock.Any(), "sess-1", gomock.Any()).Return(usecase.CheckoutView{}, usecase.ErrGatewayNotConfigured)

		w := doCheckoutRequest(r, http.MethodPost, "/v1/checkout/details/confirm", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_GetSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICheckoutUseCase(ctrl)
	r := newCheckoutRouter(NewCheckoutHandler(uc))

	uc.EXPECT().GetSummary(gomock.Any(), "sess-1").Return(usecase.CheckoutSummary{
		ProductID:    "PROD-010",
		ProductPrice: 85000,
		BaseFee:      entities.BaseFee,
		DeliveryFee:  entities.DeliveryFee,
		Total:        entities.OrderTotal(85000),
		Currency:     entities.Currency,
		CardBrand:    entities.CardBrandVisa,
		CardLast4:    "1111",
	}, nil)

	w := doCheckoutRequest(r, http.MethodGet, "/v1/checkout/summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Total     int64  `json:"total"`
		CardBrand string `json:"card_brand"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Total != 96000 || body.CardBrand != "VISA" {
		t.Fatalf("unexpected summary %+v", body)
	}
}

func TestCheckoutHandler_ConfirmPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		txID := "tx-1"
		uc.EXPECT().ConfirmPayment(gomock.Any(), "sess-1").Return(usecase.PaymentStatusView{
			TransactionID:      &txID,
			Status:             entities.TransactionStatusApproved,
			CountdownRemaining: 10,
		}, nil)

		w := doCheckoutRequest(r, http.MethodPost, "/v1/checkout/pay", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			TransactionID *string `json:"transaction_id"`
			Status        string  `json:"status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.TransactionID == nil || *body.TransactionID != "tx-1" || body.Status != "APPROVED" {
			t.Fatalf("unexpected status %+v", body)
		}
	})

	t.Run("gateway rejects call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().ConfirmPayment(gomock.Any(), "sess-1").Return(usecase.PaymentStatusView{}, &usecase.PaymentError{Message: usecase.DefaultPaymentErrorMessage})

		w := doCheckoutRequest(r, http.MethodPost, "/v1/checkout/pay", "")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if body := decodeHTTPError(t, w); body.Code != "PAYMENT_FAILED" {
			t.Fatalf("unexpected code %s", body.Code)
		}
	})

	t.Run("reset while in flight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().ConfirmPayment(gomock.Any(), "sess-1").Return(usecase.PaymentStatusView{}, usecase.ErrCheckoutReset)

		w := doCheckoutRequest(r, http.MethodPost, "/v1/checkout/pay", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeHTTPError(t, w); body.Code != "CHECKOUT_RESET" {
			t.Fatalf("unexpected code %s", body.Code)
		}
	})
}

func TestCheckoutHandler_Navigation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("modify", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().ModifyDetails(gomock.Any(), "sess-1").Return(usecase.CheckoutView{Screen: usecase.ScreenDetails}, nil)

		w := doCheckoutRequest(r, http.MethodPost, "/v1/checkout/modify", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().GetStatus(gomock.Any(), "sess-1").Return(usecase.PaymentStatusView{Status: entities.TransactionStatusFailed, RetryAllowed: true}, nil)

		w := doCheckoutRequest(r, http.MethodGet, "/v1/checkout/status", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			RetryAllowed bool `json:"retry_allowed"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !body.RetryAllowed {
			t.Fatalf("expected retry_allowed")
		}
	})

	t.Run("home", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().ReturnHome(gomock.Any(), "sess-1").Return(usecase.CheckoutView{Screen: usecase.ScreenCatalog}, nil)

		w := doCheckoutRequest(r, http.MethodPost, "/v1/checkout/home", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("retry not allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().Retry(gomock.Any(), "sess-1").Return(usecase.CheckoutView{}, usecase.ErrRetryNotAllowed)

		w := doCheckoutRequest(r, http.MethodPost, "/v1/checkout/retry", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeHTTPError(t, w); body.Code != "RETRY_NOT_ALLOWED" {
			t.Fatalf("unexpected code %s", body.Code)
		}
	})
}

func TestCheckoutHandler_MintsSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICheckoutUseCase(ctrl)
	r := newCheckoutRouter(NewCheckoutHandler(uc))

	var seen string
	uc.EXPECT().GetCheckout(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) (usecase.CheckoutView, error) {
		seen = id
		return usecase.CheckoutView{SessionID: id, Screen: usecase.ScreenCatalog}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/checkout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if seen == "" || w.Header().Get(middleware.SessionHeader) != seen {
		t.Fatalf("expected minted session %q echoed, got %q", seen, w.Header().Get(middleware.SessionHeader))
	}
}
