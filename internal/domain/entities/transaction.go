package entities

import (
	"strings"
	"time"
)

// TransactionStatus is the outcome of the latest payment attempt.
type TransactionStatus string

const (
	TransactionStatusIdle     TransactionStatus = "IDLE"
	TransactionStatusPending  TransactionStatus = "PENDING"
	TransactionStatusApproved TransactionStatus = "APPROVED"
	TransactionStatusFailed   TransactionStatus = "FAILED"
)

// TransactionState is what the status screen reads. TransactionID is nil
// until a payment attempt resolves.
type TransactionState struct {
	TransactionID *string           `json:"transactionId"`
	Status        TransactionStatus `json:"status"`
}

func NewTransactionState() TransactionState {
	return TransactionState{Status: TransactionStatusIdle}
}

// Transaction is the persisted record of one resolved payment attempt.
//
// Storage model (DynamoDB):
//   - PK: id (the checkout reference sent to the gateway)
//
// Card data is limited to brand and last four digits.
type Transaction struct {
	ID             string            `json:"id"`
	SessionID      string            `json:"session_id"`
	ProductID      string            `json:"product_id"`
	ProductName    string            `json:"product_name"`
	ProductPrice   int64             `json:"product_price"`
	BaseFee        int64             `json:"base_fee"`
	DeliveryFee    int64             `json:"delivery_fee"`
	Amount         int64             `json:"amount"`
	Currency       string            `json:"currency"`
	Status         TransactionStatus `json:"status"`
	Gateway        string            `json:"gateway"`
	ProviderID     string            `json:"provider_id,omitempty"`
	ProviderStatus string            `json:"provider_status,omitempty"`
	CardBrand      CardBrand         `json:"card_brand,omitempty"`
	CardLast4      string            `json:"card_last4,omitempty"`
	CustomerEmail  string            `json:"customer_email,omitempty"`
	DeliveryName   string            `json:"delivery_name"`
	DeliveryCity   string            `json:"delivery_city"`
	ClientIP       string            `json:"client_ip,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

// MapGatewayStatus folds provider statuses (Wompi upper case, Mercado Pago
// lower snake case) into a TransactionStatus. Anything unknown is a failure.
func MapGatewayStatus(providerStatus string) TransactionStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved":
		return TransactionStatusApproved
	case "pending", "in_process", "authorized", "in_mediation":
		return TransactionStatusPending
	default:
		return TransactionStatusFailed
	}
}
