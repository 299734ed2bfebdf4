package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	if _, err := NewMercadoPagoGateway(""); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_TokenizeCard(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer TEST-token" {
				t.Fatalf("unexpected authorization %q", got)
			}
			var body mercadoPagoCardTokenRequest
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.ExpirationMonth != 8 || body.ExpirationYear != 2028 || body.Cardholder.Name != "ANA PEREZ" {
				t.Fatalf("unexpected body %+v", body)
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"mp_tok_1"}`))
		}))
		defer srv.Close()

		g := &MercadoPagoGateway{accessToken: "TEST-token", cardTokenURL: srv.URL, httpClient: srv.Client()}
		token, err := g.TokenizeCard(context.Background(), entities.CardData{
			Number: "5031755734530604", CVC: "123", ExpMonth: "08", ExpYear: "28", CardHolder: "ANA PEREZ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "mp_tok_1" {
			t.Fatalf("expected mp_tok_1, got %s", token)
		}
	})

	t.Run("cause description is the message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"bad request","cause":[{"code":"E301","description":"invalid card number"}]}`))
		}))
		defer srv.Close()

		g := &MercadoPagoGateway{accessToken: "TEST-token", cardTokenURL: srv.URL, httpClient: srv.Client()}
		_, err := g.TokenizeCard(context.Background(), entities.CardData{ExpMonth: "01", ExpYear: "30"})
		var gwErr *interfaces.GatewayError
		if !errors.As(err, &gwErr) || gwErr.Message != "invalid card number" {
			t.Fatalf("unexpected error %v", err)
		}
	})

	t.Run("bad expiry never reaches the network", func(t *testing.T) {
		g := &MercadoPagoGateway{accessToken: "TEST-token", cardTokenURL: "http://127.0.0.1:0", httpClient: http.DefaultClient}
		_, err := g.TokenizeCard(context.Background(), entities.CardData{ExpMonth: "xx", ExpYear: "28"})
		var gwErr *interfaces.GatewayError
		if !errors.As(err, &gwErr) || gwErr.Message != "Invalid card expiry" {
			t.Fatalf("unexpected error %v", err)
		}
	})
}

func TestMercadoPagoPaymentMethod(t *testing.T) {
	if mercadoPagoPaymentMethod(entities.CardBrandVisa) != "visa" {
		t.Fatalf("expected visa")
	}
	if mercadoPagoPaymentMethod(entities.CardBrandMastercard) != "master" {
		t.Fatalf("expected master")
	}
	if mercadoPagoPaymentMethod(entities.CardBrandNone) != "" {
		t.Fatalf("expected empty payment method")
	}
}
