package response

import (
	"time"

	"storefront_checkout/internal/domain/entities"
)

type TransactionResponse struct {
	ID             string    `json:"id"`
	TransactionID  string    `json:"transaction_id"`
	ProductID      string    `json:"product_id"`
	ProductName    string    `json:"product_name"`
	ProductPrice   int64     `json:"product_price"`
	BaseFee        int64     `json:"base_fee"`
	DeliveryFee    int64     `json:"delivery_fee"`
	Amount         int64     `json:"amount"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	Gateway        string    `json:"gateway"`
	ProviderID     string    `json:"provider_id,omitempty"`
	ProviderStatus string    `json:"provider_status,omitempty"`
	CardBrand      string    `json:"card_brand,omitempty"`
	CardLast4      string    `json:"card_last4,omitempty"`
	DeliveryName   string    `json:"delivery_name"`
	DeliveryCity   string    `json:"delivery_city"`
	CreatedAt      time.Time `json:"created_at"`
}

// FromTransaction leaves out the session id, client IP and customer email.
func FromTransaction(t entities.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:             t.ID,
		TransactionID:  t.ID,
		ProductID:      t.ProductID,
		ProductName:    t.ProductName,
		ProductPrice:   t.ProductPrice,
		BaseFee:        t.BaseFee,
		DeliveryFee:    t.DeliveryFee,
		Amount:         t.Amount,
		Currency:       t.Currency,
		Status:         string(t.Status),
		Gateway:        t.Gateway,
		ProviderID:     t.ProviderID,
		ProviderStatus: t.ProviderStatus,
		CardBrand:      string(t.CardBrand),
		CardLast4:      t.CardLast4,
		DeliveryName:   t.DeliveryName,
		DeliveryCity:   t.DeliveryCity,
		CreatedAt:      t.CreatedAt,
	}
}
