package response

import (
	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/domain/validation"
	"storefront_checkout/internal/usecase"
)

// DraftResponse never carries the raw card number or CVV; while the user is
// typing only the masked number is echoed back.
type DraftResponse struct {
	CurrentStep      int    `json:"current_step"`
	ProductID        string `json:"product_id"`
	ProductName      string `json:"product_name"`
	ProductPrice     int64  `json:"product_price"`
	CardNumberMasked string `json:"card_number_masked,omitempty"`
	CardHolder       string `json:"card_holder"`
	CardExpiry       string `json:"card_expiry"`
	CardBrand        string `json:"card_brand"`
	CardLast4        string `json:"card_last4,omitempty"`
	CardTokenized    bool   `json:"card_tokenized"`
	DeliveryName     string `json:"delivery_name"`
	DeliveryAddress  string `json:"delivery_address"`
	DeliveryCity     string `json:"delivery_city"`
	DeliveryPhone    string `json:"delivery_phone"`
	DeliveryEmail    string `json:"delivery_email,omitempty"`
}

type TransactionStateResponse struct {
	TransactionID *string `json:"transaction_id"`
	Status        string  `json:"status"`
}

type CheckoutViewResponse struct {
	SessionID          string                   `json:"session_id"`
	Screen             string                   `json:"screen"`
	Draft              DraftResponse            `json:"draft"`
	Transaction        TransactionStateResponse `json:"transaction"`
	Processing         bool                     `json:"processing"`
	PaymentError       string                   `json:"payment_error,omitempty"`
	CountdownRemaining int                      `json:"countdown_remaining,omitempty"`
}

type CheckoutSummaryResponse struct {
	ProductID       string `json:"product_id"`
	ProductName     string `json:"product_name"`
	ProductPrice    int64  `json:"product_price"`
	BaseFee         int64  `json:"base_fee"`
	DeliveryFee     int64  `json:"delivery_fee"`
	Total           int64  `json:"total"`
	Currency        string `json:"currency"`
	CardBrand       string `json:"card_brand"`
	CardLast4       string `json:"card_last4"`
	DeliveryName    string `json:"delivery_name"`
	DeliveryAddress string `json:"delivery_address"`
	DeliveryCity    string `json:"delivery_city"`
	Processing      bool   `json:"processing"`
	PaymentError    string `json:"payment_error,omitempty"`
}

type PaymentStatusResponse struct {
	TransactionID      *string `json:"transaction_id"`
	Status             string  `json:"status"`
	Title              string  `json:"title"`
	Subtitle           string  `json:"subtitle"`
	Message            string  `json:"message"`
	CountdownRemaining int     `json:"countdown_remaining"`
	RetryAllowed       bool    `json:"retry_allowed"`
}

func FromCheckoutView(v usecase.CheckoutView) CheckoutViewResponse {
	return CheckoutViewResponse{
		SessionID:          v.SessionID,
		Screen:             string(v.Screen),
		Draft:              fromDraft(v.Draft),
		Transaction:        fromTransactionState(v.Transaction),
		Processing:         v.Processing,
		PaymentError:       v.PaymentError,
		CountdownRemaining: v.CountdownRemaining,
	}
}

func FromCheckoutSummary(s usecase.CheckoutSummary) CheckoutSummaryResponse {
	return CheckoutSummaryResponse{
		ProductID:       s.ProductID,
		ProductName:     s.ProductName,
		ProductPrice:    s.ProductPrice,
		BaseFee:         s.BaseFee,
		DeliveryFee:     s.DeliveryFee,
		Total:           s.Total,
		Currency:        s.Currency,
		CardBrand:       string(s.CardBrand),
		CardLast4:       s.CardLast4,
		DeliveryName:    s.DeliveryName,
		DeliveryAddress: s.DeliveryAddress,
		DeliveryCity:    s.DeliveryCity,
		Processing:      s.Processing,
		PaymentError:    s.PaymentError,
	}
}

func FromPaymentStatus(s usecase.PaymentStatusView) PaymentStatusResponse {
	return PaymentStatusResponse{
		TransactionID:      s.TransactionID,
		Status:             string(s.Status),
		Title:              s.Title,
		Subtitle:           s.Subtitle,
		Message:            s.Message,
		CountdownRemaining: s.CountdownRemaining,
		RetryAllowed:       s.RetryAllowed,
	}
}

var validationFieldNames = map[string]string{
	validation.FieldCardNumber:      "card_number",
	validation.FieldCardHolder:      "card_holder",
	validation.FieldCardExpiry:      "card_expiry",
	validation.FieldCardCVV:         "card_cvv",
	validation.FieldDeliveryName:    "delivery_name",
	validation.FieldDeliveryAddress: "delivery_address",
	validation.FieldDeliveryCity:    "delivery_city",
	validation.FieldDeliveryPhone:   "delivery_phone",
}

// ValidationFields renames validation errors to the request field names.
func ValidationFields(errs validation.ErrorSet) map[string]string {
	out := make(map[string]string, len(errs))
	for field, msg := range errs {
		if name, ok := validationFieldNames[field]; ok {
			out[name] = msg
			continue
		}
		out[field] = msg
	}
	return out
}

func fromDraft(d entities.CheckoutDraft) DraftResponse {
	return DraftResponse{
		CurrentStep:      int(d.CurrentStep),
		ProductID:        d.ProductID,
		ProductName:      d.ProductName,
		ProductPrice:     d.ProductPrice,
		CardNumberMasked: maskCardNumber(d.CardNumber),
		CardHolder:       d.CardHolder,
		CardExpiry:       d.CardExpiry,
		CardBrand:        string(d.CardBrand),
		CardLast4:        d.CardLast4,
		CardTokenized:    d.CardToken != "",
		DeliveryName:     d.DeliveryName,
		DeliveryAddress:  d.DeliveryAddress,
		DeliveryCity:     d.DeliveryCity,
		DeliveryPhone:    d.DeliveryPhone,
		DeliveryEmail:    d.DeliveryEmail,
	}
}

func fromTransactionState(s entities.TransactionState) TransactionStateResponse {
	return TransactionStateResponse{TransactionID: s.TransactionID, Status: string(s.Status)}
}

// maskCardNumber keeps the last four digits of whatever has been typed.
func maskCardNumber(number string) string {
	clean := validation.StripSpaces(number)
	if clean == "" {
		return ""
	}
	if len(clean) <= 4 {
		return clean
	}
	masked := make([]byte, len(clean))
	for i := range masked {
		if i < len(clean)-4 {
			masked[i] = '*'
		} else {
			masked[i] = clean[i]
		}
	}
	return string(masked)
}
