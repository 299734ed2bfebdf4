package payments

import (
	"fmt"
	"log"

	"storefront_checkout/internal/infrastructure/config"
	"storefront_checkout/internal/usecase/interfaces"
)

// NewGateway builds the adapter selected by the configuration.
func NewGateway(cfg config.Config) (interfaces.IPaymentGateway, error) {
	name := cfg.EffectiveGateway()
	log.Printf("[payment][gateway] selected gateway=%s", name)

	// Typed nil pointers must not leak into the interface.
	switch name {
	case "simulated":
		return NewSimulatedGateway(cfg.Payments.SimulatedDelay), nil
	case "wompi":
		g, err := NewWompiGateway(cfg.Payments.WompiURL, cfg.Payments.WompiPubKey, cfg.Payments.WompiPrvKey)
		if err != nil {
			return nil, err
		}
		return g, nil
	case "mercadopago":
		g, err := NewMercadoPagoGateway(cfg.Payments.MercadoPagoAccessToken)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown payment gateway %q", name)
	}
}
