// Package validation checks the card and delivery fields of a checkout draft.
//
// Every field is checked on each call; errors are keyed by the draft's JSON
// field name and carry the message shown next to the field.
package validation

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"storefront_checkout/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

const (
	FieldCardNumber      = "cardNumber"
	FieldCardHolder      = "cardHolder"
	FieldCardExpiry      = "cardExpiry"
	FieldCardCVV         = "cardCvv"
	FieldDeliveryName    = "deliveryName"
	FieldDeliveryAddress = "deliveryAddress"
	FieldDeliveryCity    = "deliveryCity"
	FieldDeliveryPhone   = "deliveryPhone"
)

const (
	MsgCardNumber      = "must have 16 numeric digits"
	MsgNameRequired    = "name required"
	MsgExpiryFormat    = "format MM/AA"
	MsgInvalidCVV      = "invalid CVV"
	MsgAddressRequired = "address required"
	MsgCityRequired    = "city required"
	MsgInvalidPhone    = "invalid phone"
)

var (
	digitsOnly    = regexp.MustCompile(`^\d+$`)
	expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	phonePattern  = regexp.MustCompile(`^\d{7,10}$`)
)

// ErrorSet maps a field name to its message. Empty means valid.
type ErrorSet map[string]string

func (e ErrorSet) Valid() bool {
	return len(e) == 0
}

type checkoutFields struct {
	CardNumber      string `json:"cardNumber" validate:"card16"`
	CardHolder      string `json:"cardHolder" validate:"notblank"`
	CardExpiry      string `json:"cardExpiry" validate:"mmaa"`
	CardCVV         string `json:"cardCvv" validate:"cvv"`
	DeliveryName    string `json:"deliveryName" validate:"notblank"`
	DeliveryAddress string `json:"deliveryAddress" validate:"notblank"`
	DeliveryCity    string `json:"deliveryCity" validate:"notblank"`
	DeliveryPhone   string `json:"deliveryPhone" validate:"phone"`
}

var messages = map[string]string{
	FieldCardNumber:      MsgCardNumber,
	FieldCardHolder:      MsgNameRequired,
	FieldCardExpiry:      MsgExpiryFormat,
	FieldCardCVV:         MsgInvalidCVV,
	FieldDeliveryName:    MsgNameRequired,
	FieldDeliveryAddress: MsgAddressRequired,
	FieldDeliveryCity:    MsgCityRequired,
	FieldDeliveryPhone:   MsgInvalidPhone,
}

// Engine wraps a validator instance with the checkout rules registered.
type Engine struct {
	validate *validator.Validate
}

func NewEngine() *Engine {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	must(v.RegisterValidation("card16", func(fl validator.FieldLevel) bool {
		return IsValidCardNumber(fl.Field().String())
	}))
	must(v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}))
	must(v.RegisterValidation("mmaa", func(fl validator.FieldLevel) bool {
		return expiryPattern.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("cvv", func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(fl.Field().String()) >= 3
	}))
	must(v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}))
	return &Engine{validate: v}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Validate checks the draft's card and delivery fields. When the draft
// already holds a card token and no raw card was typed again, the number
// and CVV checks are skipped since those values no longer exist.
func (e *Engine) Validate(d entities.CheckoutDraft) ErrorSet {
	fields := checkoutFields{
		CardNumber:      d.CardNumber,
		CardHolder:      d.CardHolder,
		CardExpiry:      d.CardExpiry,
		CardCVV:         d.CardCVV,
		DeliveryName:    d.DeliveryName,
		DeliveryAddress: d.DeliveryAddress,
		DeliveryCity:    d.DeliveryCity,
		DeliveryPhone:   d.DeliveryPhone,
	}
	skipCardSecrets := d.CardToken != "" && !d.HasRawCard()

	out := ErrorSet{}
	err := e.validate.Struct(fields)
	if err == nil {
		return out
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		panic(err)
	}
	for _, fe := range verrs {
		name := fe.Field()
		if skipCardSecrets && (name == FieldCardNumber || name == FieldCardCVV) {
			continue
		}
		out[name] = messages[name]
	}
	return out
}

// IsValidCardNumber strips whitespace and requires exactly 16 digits.
func IsValidCardNumber(number string) bool {
	clean := StripSpaces(number)
	return len(clean) == 16 && digitsOnly.MatchString(clean)
}

func StripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// DetectBrand runs on partial input as the number is typed.
func DetectBrand(number string) entities.CardBrand {
	clean := StripSpaces(number)
	switch {
	case strings.HasPrefix(clean, "4"):
		return entities.CardBrandVisa
	case len(clean) >= 2 && clean[0] == '5' && clean[1] >= '1' && clean[1] <= '5':
		return entities.CardBrandMastercard
	default:
		return entities.CardBrandNone
	}
}

// MaskExpiry formats raw expiry input as MM/AA: non-digits are dropped, a
// slash is inserted after the second digit and input is capped at 4 digits.
func MaskExpiry(input string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, input)
	if len(digits) <= 2 {
		return digits
	}
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits[:2] + "/" + digits[2:]
}

// SplitExpiry returns month and two-digit year from a MM/AA value.
func SplitExpiry(expiry string) (month, year string, ok bool) {
	if !expiryPattern.MatchString(expiry) {
		return "", "", false
	}
	return expiry[:2], expiry[3:], true
}

// LastFour returns the last four digits of a card number.
func LastFour(number string) string {
	clean := StripSpaces(number)
	if len(clean) <= 4 {
		return clean
	}
	return clean[len(clean)-4:]
}
