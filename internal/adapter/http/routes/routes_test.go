package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront_checkout/internal/adapter/http/middleware"
	"storefront_checkout/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func testConfig(ipifyURL string) config.Config {
	return config.Config{
		Http:     config.Http{Port: "8080"},
		Payments: config.Payments{Gateway: "simulated"},
		Storage:  config.Storage{Draft: "memory", Transactions: "memory", Catalog: "static"},
		Checkout: config.Checkout{
			CountdownStart:       10,
			CountdownTick:        time.Hour,
			SessionIdleTTL:       time.Hour,
			DefaultCustomerEmail: "cliente@example.com",
		},
		IPLookupURL: ipifyURL,
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ipify := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ip":"190.0.0.1"}`))
	}))
	t.Cleanup(ipify.Close)

	deps := buildDependencies(context.Background(), testConfig(ipify.URL))
	t.Cleanup(deps.close)
	return newRouter(deps)
}

func serve(r *gin.Engine, method, path, session, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if session != "" {
		req.Header.Set(middleware.SessionHeader, session)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Ping(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, http.MethodGet, "/v1/ping", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestRouter_UnknownRouteFallsBackToCatalog(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, http.MethodGet, "/does/not/exist", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Products []struct {
			ID string `json:"id"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Products, 10)
	require.Equal(t, "PROD-001", body.Products[0].ID)
}

func TestRouter_Metrics(t *testing.T) {
	r := newTestRouter(t)

	serve(r, http.MethodGet, "/v1/ping", "", "")
	w := serve(r, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "storefront_checkout_http_requests_total")
}

func TestRouter_CheckoutFlow(t *testing.T) {
	r := newTestRouter(t)
	const session = "flow-1"

	w := serve(r, http.MethodPost, "/v1/checkout/product", session, `{"product_id":"PROD-010"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = serve(r, http.MethodPatch, "/v1/checkout/details", session, `{
		"card_number":"5555 5555 5555 4444",
		"card_holder":"ANA PEREZ",
		"card_expiry":"1230",
		"card_cvv":"123",
		"delivery_name":"Ana Perez",
		"delivery_address":"Calle 1 # 2-3",
		"delivery_city":"Medellín",
		"delivery_phone":"3001234567"
	}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotContains(t, w.Body.String(), "5555 5555 5555 4444")

	w = serve(r, http.MethodPost, "/v1/checkout/details/confirm", session, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = serve(r, http.MethodGet, "/v1/checkout/summary", session, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var summary struct {
		Total     int64  `json:"total"`
		CardBrand string `json:"card_brand"`
		CardLast4 string `json:"card_last4"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	require.Equal(t, int64(96000), summary.Total)
	require.Equal(t, "MASTERCARD", summary.CardBrand)
	require.Equal(t, "4444", summary.CardLast4)

	w = serve(r, http.MethodPost, "/v1/checkout/pay", session, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var status struct {
		TransactionID *string `json:"transaction_id"`
		Status        string  `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	require.Equal(t, "APPROVED", status.Status)
	require.NotNil(t, status.TransactionID)

	w = serve(r, http.MethodGet, "/v1/transactions/"+*status.TransactionID, "", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Contains(t, w.Body.String(), `"amount":96000`)

	w = serve(r, http.MethodGet, "/v1/products", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"id":"PROD-010"`)
	require.Contains(t, w.Body.String(), `"stock":29`)

	w = serve(r, http.MethodPost, "/v1/checkout/retry", session, "")
	require.Equal(t, http.StatusConflict, w.Code)

	w = serve(r, http.MethodPost, "/v1/checkout/home", session, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"screen":"catalog"`)
}
