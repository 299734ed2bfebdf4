package request

import (
	"strings"

	"storefront_checkout/internal/domain/entities"
)

// SelectProductRequest starts a checkout for one catalog product.
type SelectProductRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

func (r SelectProductRequest) ResolveProductID() string {
	return strings.TrimSpace(r.ProductID)
}

// CheckoutDetailsRequest is a merge-patch of the details form: absent fields
// keep their current value, present fields overwrite it.
type CheckoutDetailsRequest struct {
	CardNumber      *string `json:"card_number"`
	CardHolder      *string `json:"card_holder"`
	CardExpiry      *string `json:"card_expiry"`
	CardCVV         *string `json:"card_cvv"`
	DeliveryName    *string `json:"delivery_name"`
	DeliveryAddress *string `json:"delivery_address"`
	DeliveryCity    *string `json:"delivery_city"`
	DeliveryPhone   *string `json:"delivery_phone"`
	DeliveryEmail   *string `json:"delivery_email" binding:"omitempty,email"`
}

func (r CheckoutDetailsRequest) ToPatch() entities.CheckoutPatch {
	return entities.CheckoutPatch{
		CardNumber:      r.CardNumber,
		CardHolder:      r.CardHolder,
		CardExpiry:      r.CardExpiry,
		CardCVV:         r.CardCVV,
		DeliveryName:    r.DeliveryName,
		DeliveryAddress: r.DeliveryAddress,
		DeliveryCity:    r.DeliveryCity,
		DeliveryPhone:   r.DeliveryPhone,
		DeliveryEmail:   r.DeliveryEmail,
	}
}
