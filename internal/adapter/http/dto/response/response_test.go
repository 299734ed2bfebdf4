package response

import (
	"testing"
	"time"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/domain/validation"
	"storefront_checkout/internal/usecase"
)

func TestFromProduct(t *testing.T) {
	res := FromProduct(entities.Product{ID: "PROD-001", Price: 100000, Stock: 3})
	if !res.LowStock || res.OutOfStock {
		t.Fatalf("unexpected stock flags: %+v", res)
	}
	if res.InstallmentPrice != 33333 || res.Installments != 3 {
		t.Fatalf("unexpected installments: %+v", res)
	}

	res = FromProduct(entities.Product{ID: "PROD-008", Price: 3, Stock: 0})
	if res.LowStock || !res.OutOfStock {
		t.Fatalf("unexpected stock flags: %+v", res)
	}
}

func TestFromCatalogSnapshot(t *testing.T) {
	res := FromCatalogSnapshot(usecase.CatalogSnapshot{Loading: true, Error: "boom"})
	if res.Products == nil || len(res.Products) != 0 {
		t.Fatalf("expected empty non-nil products, got %+v", res.Products)
	}
	if !res.Loading || res.Error != "boom" {
		t.Fatalf("unexpected flags: %+v", res)
	}
}

func TestFromCheckoutView_HidesCardSecrets(t *testing.T) {
	draft := entities.NewCheckoutDraft()
	draft.CurrentStep = entities.CheckoutStepDetails
	draft.CardNumber = "4111 1111 1111 1234"
	draft.CardCVV = "999"

	res := FromCheckoutView(usecase.CheckoutView{SessionID: "s1", Screen: usecase.ScreenDetails, Draft: draft, Transaction: entities.NewTransactionState()})
	if res.Draft.CardNumberMasked != "************1234" {
		t.Fatalf("unexpected masked number: %s", res.Draft.CardNumberMasked)
	}
	if res.Draft.CurrentStep != 2 || res.Screen != "details" || res.Transaction.Status != "IDLE" {
		t.Fatalf("unexpected view: %+v", res)
	}
}

func TestValidationFields(t *testing.T) {
	got := ValidationFields(validation.ErrorSet{
		validation.FieldCardCVV:       validation.MsgInvalidCVV,
		validation.FieldDeliveryPhone: validation.MsgInvalidPhone,
	})
	if got["card_cvv"] != "invalid CVV" || got["delivery_phone"] != "invalid phone" || len(got) != 2 {
		t.Fatalf("unexpected fields: %+v", got)
	}
}

func TestFromTransaction(t *testing.T) {
	now := time.Now().UTC()
	res := FromTransaction(entities.Transaction{ID: "tx-1", Status: entities.TransactionStatusApproved, ClientIP: "1.2.3.4", CreatedAt: now})
	if res.ID != "tx-1" || res.TransactionID != "tx-1" || res.Status != "APPROVED" || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected response: %+v", res)
	}
}
