package entities

const (
	BaseFee     int64 = 3000
	DeliveryFee int64 = 8000

	// Currency is fixed for every gateway request.
	Currency = "COP"

	// DefaultInstallments is sent with every charge.
	DefaultInstallments = 1
)

// OrderTotal is the amount charged for a product price, in whole pesos.
func OrderTotal(productPrice int64) int64 {
	return productPrice + BaseFee + DeliveryFee
}

// ToMinorUnits converts whole pesos to the gateway wire unit.
func ToMinorUnits(amount int64) int64 {
	return amount * 100
}

// CardData is the raw card handed to the tokenization gateway. It is never
// stored.
type CardData struct {
	Number     string
	CVC        string
	ExpMonth   string
	ExpYear    string
	CardHolder string
}

// PaymentRequest is a tokenized charge.
type PaymentRequest struct {
	TransactionID string
	Amount        int64
	CardToken     string
	Installments  int
	CustomerEmail string
	Description   string
	CardBrand     CardBrand
}

// PaymentResult is a resolved charge. ProviderStatus keeps the gateway's own
// wording; Status is the mapped value.
type PaymentResult struct {
	ProviderID     string
	ProviderStatus string
	Status         TransactionStatus
}
