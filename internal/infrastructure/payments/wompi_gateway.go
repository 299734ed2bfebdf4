package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sort"
	"strings"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"
)

var ErrMissingWompiKeys = errors.New("missing WOMPI_PUB_KEY or WOMPI_PRV_KEY")

// WompiGateway talks to the Wompi REST API: card tokens are created with the
// public key and transactions with the private key.
type WompiGateway struct {
	baseURL string
	pubKey  string
	prvKey  string
	client  *http.Client
}

var _ interfaces.IPaymentGateway = (*WompiGateway)(nil)

type wompiCardTokenRequest struct {
	Number     string `json:"number"`
	CVC        string `json:"cvc"`
	ExpMonth   string `json:"exp_month"`
	ExpYear    string `json:"exp_year"`
	CardHolder string `json:"card_holder"`
}

type wompiPaymentMethod struct {
	Type         string `json:"type"`
	Installments int    `json:"installments"`
	Token        string `json:"token"`
}

type wompiTransactionRequest struct {
	AmountInCents int64              `json:"amount_in_cents"`
	Currency      string             `json:"currency"`
	CustomerEmail string             `json:"customer_email"`
	Reference     string             `json:"reference"`
	PaymentMethod wompiPaymentMethod `json:"payment_method"`
}

type wompiResponse struct {
	Data struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"data"`
}

type wompiErrorResponse struct {
	Error struct {
		Type     string              `json:"type"`
		Reason   string              `json:"reason"`
		Messages map[string][]string `json:"messages"`
	} `json:"error"`
}

func NewWompiGateway(baseURL, pubKey, prvKey string) (*WompiGateway, error) {
	if pubKey == "" || prvKey == "" {
		log.Printf("[payment][wompi] missing keys")
		return nil, ErrMissingWompiKeys
	}
	log.Printf("[payment][wompi] client initialized base_url=%s", baseURL)
	return &WompiGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		pubKey:  pubKey,
		prvKey:  prvKey,
		client:  newHTTPClient(),
	}, nil
}

func (g *WompiGateway) Name() string { return "wompi" }

func (g *WompiGateway) TokenizeCard(ctx context.Context, card entities.CardData) (string, error) {
	log.Printf("[payment][wompi] tokenize start")
	var out wompiResponse
	err := postJSON(ctx, g.client, g.baseURL+"/tokens/cards", g.pubKey, wompiCardTokenRequest{
		Number:     card.Number,
		CVC:        card.CVC,
		ExpMonth:   card.ExpMonth,
		ExpYear:    card.ExpYear,
		CardHolder: card.CardHolder,
	}, &out, wompiErrorMessage)
	if err != nil {
		log.Printf("[payment][wompi] tokenize failed err=%v", err)
		return "", err
	}
	if out.Data.ID == "" {
		return "", &interfaces.GatewayError{Message: "Payment gateway returned no card token"}
	}
	log.Printf("[payment][wompi] tokenize success")
	return out.Data.ID, nil
}

func (g *WompiGateway) ProcessPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error) {
	log.Printf("[payment][wompi] transaction start reference=%s amount=%d", req.TransactionID, req.Amount)
	var out wompiResponse
	err := postJSON(ctx, g.client, g.baseURL+"/transactions", g.prvKey, wompiTransactionRequest{
		AmountInCents: entities.ToMinorUnits(req.Amount),
		Currency:      entities.Currency,
		CustomerEmail: req.CustomerEmail,
		Reference:     req.TransactionID,
		PaymentMethod: wompiPaymentMethod{
			Type:         "CARD",
			Installments: req.Installments,
			Token:        req.CardToken,
		},
	}, &out, wompiErrorMessage)
	if err != nil {
		log.Printf("[payment][wompi] transaction failed reference=%s err=%v", req.TransactionID, err)
		return entities.PaymentResult{}, err
	}

	log.Printf("[payment][wompi] transaction resolved reference=%s provider_id=%s provider_status=%s", req.TransactionID, out.Data.ID, out.Data.Status)
	return entities.PaymentResult{
		ProviderID:     out.Data.ID,
		ProviderStatus: out.Data.Status,
		Status:         entities.MapGatewayStatus(out.Data.Status),
	}, nil
}

// wompiErrorMessage prefers the reason, then the first field message.
func wompiErrorMessage(body []byte) string {
	var e wompiErrorResponse
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	if e.Error.Reason != "" {
		return e.Error.Reason
	}
	fields := make([]string, 0, len(e.Error.Messages))
	for f := range e.Error.Messages {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		if msgs := e.Error.Messages[f]; len(msgs) > 0 {
			return f + ": " + msgs[0]
		}
	}
	return ""
}
