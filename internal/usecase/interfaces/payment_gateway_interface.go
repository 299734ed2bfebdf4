package interfaces

import (
	"context"

	"storefront_checkout/internal/domain/entities"
)

// IPaymentGateway abstracts external payment providers (Wompi, Mercado Pago,
// or the simulated gateway).
//
// Payments are tokenize-then-charge: raw card data only ever crosses
// TokenizeCard, and ProcessPayment works on the returned token.
//
//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface_mock.go -package=mock_interfaces
type IPaymentGateway interface {
	Name() string
	TokenizeCard(ctx context.Context, card entities.CardData) (token string, err error)
	ProcessPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error)
}

// GatewayError carries the provider's human readable message so it can be
// shown to the user as-is.
type GatewayError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
