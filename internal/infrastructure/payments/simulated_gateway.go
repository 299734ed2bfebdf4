package payments

import (
	"context"
	"log"
	"time"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// SimulatedGateway approves every charge after a fixed delay. It is the
// default gateway and what PAYMENT_GATEWAY_MOCK switches to.
type SimulatedGateway struct {
	delay time.Duration
}

var _ interfaces.IPaymentGateway = (*SimulatedGateway)(nil)

func NewSimulatedGateway(delay time.Duration) *SimulatedGateway {
	log.Printf("[payment][simulated] mock mode enabled delay=%s", delay)
	return &SimulatedGateway{delay: delay}
}

func (g *SimulatedGateway) Name() string { return "simulated" }

func (g *SimulatedGateway) TokenizeCard(_ context.Context, card entities.CardData) (string, error) {
	token := "tok_sim_" + uuid.NewString()
	log.Printf("[payment][simulated] tokenize success holder_len=%d", len(card.CardHolder))
	return token, nil
}

func (g *SimulatedGateway) ProcessPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error) {
	log.Printf("[payment][simulated] create start reference=%s amount=%d", req.TransactionID, req.Amount)
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return entities.PaymentResult{}, ctx.Err()
		case <-timer.C:
		}
	}

	id := "sim_" + uuid.NewString()
	log.Printf("[payment][simulated] create success reference=%s provider_payment_id=%s provider_status=APPROVED", req.TransactionID, id)
	return entities.PaymentResult{
		ProviderID:     id,
		ProviderStatus: "APPROVED",
		Status:         entities.TransactionStatusApproved,
	}, nil
}
