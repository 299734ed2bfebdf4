package entities

// CheckoutStep is the position of a draft in the checkout flow.
type CheckoutStep int

const (
	CheckoutStepBrowsing CheckoutStep = 1
	CheckoutStepDetails  CheckoutStep = 2
	CheckoutStepSummary  CheckoutStep = 3
)

func (s CheckoutStep) Valid() bool {
	return s >= CheckoutStepBrowsing && s <= CheckoutStepSummary
}

// CardBrand is cosmetic; it never gates validity.
type CardBrand string

const (
	CardBrandNone       CardBrand = ""
	CardBrandVisa       CardBrand = "VISA"
	CardBrandMastercard CardBrand = "MASTERCARD"
)

// CheckoutDraft is the in-progress order owned by one checkout session.
//
// CardNumber and CardCVV are held in memory only: they carry `json:"-"`
// so no snapshot written to durable storage can contain them. Once the
// card is tokenized only CardToken, CardBrand and CardLast4 remain.
type CheckoutDraft struct {
	CurrentStep     CheckoutStep `json:"currentStep"`
	ProductID       string       `json:"productId"`
	ProductName     string       `json:"productName"`
	ProductPrice    int64        `json:"productPrice"`
	CardNumber      string       `json:"-"`
	CardHolder      string       `json:"cardHolder"`
	CardExpiry      string       `json:"cardExpiry"`
	CardCVV         string       `json:"-"`
	CardToken       string       `json:"cardToken"`
	CardBrand       CardBrand    `json:"cardBrand"`
	CardLast4       string       `json:"cardLast4"`
	DeliveryName    string       `json:"deliveryName"`
	DeliveryAddress string       `json:"deliveryAddress"`
	DeliveryCity    string       `json:"deliveryCity"`
	DeliveryPhone   string       `json:"deliveryPhone"`
	DeliveryEmail   string       `json:"deliveryEmail"`
	ClientIP        string       `json:"clientIp"`
}

// NewCheckoutDraft returns the default draft: step 1 with every field empty.
func NewCheckoutDraft() CheckoutDraft {
	return CheckoutDraft{CurrentStep: CheckoutStepBrowsing}
}

// HasRawCard reports whether the user typed card secrets not yet tokenized.
func (d CheckoutDraft) HasRawCard() bool {
	return d.CardNumber != "" || d.CardCVV != ""
}

// CheckoutPatch is a merge-patch over the editable draft fields.
// Nil fields are left untouched by Apply.
type CheckoutPatch struct {
	ProductID       *string
	ProductName     *string
	ProductPrice    *int64
	CardNumber      *string
	CardHolder      *string
	CardExpiry      *string
	CardCVV         *string
	DeliveryName    *string
	DeliveryAddress *string
	DeliveryCity    *string
	DeliveryPhone   *string
	DeliveryEmail   *string
}

// TouchesCard reports whether the patch edits any card field. Editing the
// card after tokenization invalidates the stored token.
func (p CheckoutPatch) TouchesCard() bool {
	return p.CardNumber != nil || p.CardHolder != nil || p.CardExpiry != nil || p.CardCVV != nil
}

func (p CheckoutPatch) Apply(d CheckoutDraft) CheckoutDraft {
	setString(&d.ProductID, p.ProductID)
	setString(&d.ProductName, p.ProductName)
	if p.ProductPrice != nil {
		d.ProductPrice = *p.ProductPrice
	}
	setString(&d.CardNumber, p.CardNumber)
	setString(&d.CardHolder, p.CardHolder)
	setString(&d.CardExpiry, p.CardExpiry)
	setString(&d.CardCVV, p.CardCVV)
	setString(&d.DeliveryName, p.DeliveryName)
	setString(&d.DeliveryAddress, p.DeliveryAddress)
	setString(&d.DeliveryCity, p.DeliveryCity)
	setString(&d.DeliveryPhone, p.DeliveryPhone)
	setString(&d.DeliveryEmail, p.DeliveryEmail)
	return d
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
