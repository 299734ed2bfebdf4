package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

const defaultMercadoPagoCardTokenURL = "https://api.mercadopago.com/v1/card_tokens"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// MercadoPagoGateway charges through the Mercado Pago SDK. Card tokens are
// created against the card_tokens endpoint, which the SDK does not wrap.
type MercadoPagoGateway struct {
	client       payment.Client
	accessToken  string
	cardTokenURL string
	httpClient   *http.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

type mercadoPagoCardTokenRequest struct {
	CardNumber      string                    `json:"card_number"`
	ExpirationMonth int                       `json:"expiration_month"`
	ExpirationYear  int                       `json:"expiration_year"`
	SecurityCode    string                    `json:"security_code"`
	Cardholder      mercadoPagoCardholderInfo `json:"cardholder"`
}

type mercadoPagoCardholderInfo struct {
	Name string `json:"name"`
}

type mercadoPagoCardTokenResponse struct {
	ID string `json:"id"`
}

type mercadoPagoErrorResponse struct {
	Message string `json:"message"`
	Cause   []struct {
		Description string `json:"description"`
	} `json:"cause"`
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][mercadopago] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][mercadopago] client initialized")

	return &MercadoPagoGateway{
		client:       payment.NewClient(cfg),
		accessToken:  accessToken,
		cardTokenURL: defaultMercadoPagoCardTokenURL,
		httpClient:   newHTTPClient(),
	}, nil
}

func (g *MercadoPagoGateway) Name() string { return "mercadopago" }

func (g *MercadoPagoGateway) TokenizeCard(ctx context.Context, card entities.CardData) (string, error) {
	month, err := strconv.Atoi(card.ExpMonth)
	if err != nil {
		return "", &interfaces.GatewayError{Message: "Invalid card expiry", Err: err}
	}
	year, err := strconv.Atoi(card.ExpYear)
	if err != nil {
		return "", &interfaces.GatewayError{Message: "Invalid card expiry", Err: err}
	}
	if year < 100 {
		year += 2000
	}

	log.Printf("[payment][mercadopago] tokenize start")
	var out mercadoPagoCardTokenResponse
	err = postJSON(ctx, g.httpClient, g.cardTokenURL, g.accessToken, mercadoPagoCardTokenRequest{
		CardNumber:      card.Number,
		ExpirationMonth: month,
		ExpirationYear:  year,
		SecurityCode:    card.CVC,
		Cardholder:      mercadoPagoCardholderInfo{Name: card.CardHolder},
	}, &out, mercadoPagoErrorMessage)
	if err != nil {
		log.Printf("[payment][mercadopago] tokenize failed err=%v", err)
		return "", err
	}
	if out.ID == "" {
		return "", &interfaces.GatewayError{Message: "Payment gateway returned no card token"}
	}
	log.Printf("[payment][mercadopago] tokenize success")
	return out.ID, nil
}

func (g *MercadoPagoGateway) ProcessPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error) {
	log.Printf("[payment][mercadopago] create start reference=%s amount=%d", req.TransactionID, req.Amount)

	requestPayload, err := json.Marshal(map[string]any{
		"transaction_amount": float64(req.Amount),
		"token":              req.CardToken,
		"installments":       req.Installments,
		"payment_method_id":  mercadoPagoPaymentMethod(req.CardBrand),
		"description":        req.Description,
		"external_reference": req.TransactionID,
		"payer": map[string]any{
			"email": req.CustomerEmail,
		},
	})
	if err != nil {
		return entities.PaymentResult{}, err
	}

	var sdkReq payment.Request
	if err := json.Unmarshal(requestPayload, &sdkReq); err != nil {
		log.Printf("[payment][mercadopago] payload unmarshal failed err=%v", err)
		return entities.PaymentResult{}, err
	}

	resp, err := g.client.Create(ctx, sdkReq)
	if err != nil {
		log.Printf("[payment][mercadopago] sdk create failed reference=%s err=%v", req.TransactionID, err)
		return entities.PaymentResult{}, &interfaces.GatewayError{Message: "Mercado Pago rejected the payment request", Err: err}
	}

	providerID := fmt.Sprintf("%d", resp.ID)
	log.Printf("[payment][mercadopago] create success reference=%s provider_payment_id=%s provider_status=%s", req.TransactionID, providerID, resp.Status)
	return entities.PaymentResult{
		ProviderID:     providerID,
		ProviderStatus: resp.Status,
		Status:         entities.MapGatewayStatus(resp.Status),
	}, nil
}

func mercadoPagoPaymentMethod(brand entities.CardBrand) string {
	switch brand {
	case entities.CardBrandVisa:
		return "visa"
	case entities.CardBrandMastercard:
		return "master"
	default:
		return ""
	}
}

func mercadoPagoErrorMessage(body []byte) string {
	var e mercadoPagoErrorResponse
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	for _, c := range e.Cause {
		if d := strings.TrimSpace(c.Description); d != "" {
			return d
		}
	}
	return e.Message
}
