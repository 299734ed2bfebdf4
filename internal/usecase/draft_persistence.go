package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"
)

const (
	checkoutStateKeyPrefix = "checkoutState:"
	checkoutEmailKeyPrefix = "checkoutEmail:"
)

var ErrCorruptDraftSnapshot = errors.New("corrupt checkout draft snapshot")

// IDraftPersistence is the durable side of a DraftStore.
type IDraftPersistence interface {
	Save(ctx context.Context, d entities.CheckoutDraft) error
	Load(ctx context.Context) (entities.CheckoutDraft, bool, error)
	LoadEmail(ctx context.Context) (string, bool, error)
	Clear(ctx context.Context) error
}

// DraftPersistence stores one session's draft snapshot under
// checkoutState:<session> and its delivery email under checkoutEmail:<session>.
type DraftPersistence struct {
	storage   interfaces.ICheckoutStateStorage
	sessionID string
}

var _ IDraftPersistence = (*DraftPersistence)(nil)

func NewDraftPersistence(storage interfaces.ICheckoutStateStorage, sessionID string) *DraftPersistence {
	return &DraftPersistence{storage: storage, sessionID: sessionID}
}

func (p *DraftPersistence) stateKey() string {
	return checkoutStateKeyPrefix + p.sessionID
}

func (p *DraftPersistence) emailKey() string {
	return checkoutEmailKeyPrefix + p.sessionID
}

func (p *DraftPersistence) Save(ctx context.Context, d entities.CheckoutDraft) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	if err := p.storage.Set(ctx, p.stateKey(), b); err != nil {
		return err
	}
	if d.DeliveryEmail != "" {
		return p.storage.Set(ctx, p.emailKey(), []byte(d.DeliveryEmail))
	}
	return nil
}

// Load returns found=false when nothing is stored. A snapshot that does not
// decode into the exact draft shape yields ErrCorruptDraftSnapshot.
func (p *DraftPersistence) Load(ctx context.Context) (entities.CheckoutDraft, bool, error) {
	raw, found, err := p.storage.Get(ctx, p.stateKey())
	if err != nil || !found {
		return entities.CheckoutDraft{}, false, err
	}
	d, err := decodeDraftSnapshot(raw)
	if err != nil {
		return entities.CheckoutDraft{}, true, err
	}
	return d, true, nil
}

func (p *DraftPersistence) LoadEmail(ctx context.Context) (string, bool, error) {
	raw, found, err := p.storage.Get(ctx, p.emailKey())
	if err != nil || !found {
		return "", false, err
	}
	return string(raw), true, nil
}

func (p *DraftPersistence) Clear(ctx context.Context) error {
	if err := p.storage.Delete(ctx, p.stateKey()); err != nil {
		return err
	}
	return p.storage.Delete(ctx, p.emailKey())
}

// draftSnapshot mirrors the persisted fields of entities.CheckoutDraft with
// pointers so a missing key can be told apart from a zero value.
type draftSnapshot struct {
	CurrentStep     *int    `json:"currentStep"`
	ProductID       *string `json:"productId"`
	ProductName     *string `json:"productName"`
	ProductPrice    *int64  `json:"productPrice"`
	CardHolder      *string `json:"cardHolder"`
	CardExpiry      *string `json:"cardExpiry"`
	CardToken       *string `json:"cardToken"`
	CardBrand       *string `json:"cardBrand"`
	CardLast4       *string `json:"cardLast4"`
	DeliveryName    *string `json:"deliveryName"`
	DeliveryAddress *string `json:"deliveryAddress"`
	DeliveryCity    *string `json:"deliveryCity"`
	DeliveryPhone   *string `json:"deliveryPhone"`
	DeliveryEmail   *string `json:"deliveryEmail"`
	ClientIP        *string `json:"clientIp"`
}

func decodeDraftSnapshot(raw []byte) (entities.CheckoutDraft, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var s draftSnapshot
	if err := dec.Decode(&s); err != nil {
		return entities.CheckoutDraft{}, fmt.Errorf("%w: %v", ErrCorruptDraftSnapshot, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return entities.CheckoutDraft{}, fmt.Errorf("%w: trailing data", ErrCorruptDraftSnapshot)
	}

	strs := []*string{
		s.ProductID, s.ProductName, s.CardHolder, s.CardExpiry, s.CardToken, s.CardBrand,
		s.CardLast4, s.DeliveryName, s.DeliveryAddress, s.DeliveryCity, s.DeliveryPhone,
		s.DeliveryEmail, s.ClientIP,
	}
	for _, v := range strs {
		if v == nil {
			return entities.CheckoutDraft{}, fmt.Errorf("%w: missing field", ErrCorruptDraftSnapshot)
		}
	}
	if s.CurrentStep == nil || s.ProductPrice == nil {
		return entities.CheckoutDraft{}, fmt.Errorf("%w: missing field", ErrCorruptDraftSnapshot)
	}

	step := entities.CheckoutStep(*s.CurrentStep)
	if !step.Valid() {
		return entities.CheckoutDraft{}, fmt.Errorf("%w: step %d", ErrCorruptDraftSnapshot, *s.CurrentStep)
	}
	if *s.ProductPrice < 0 {
		return entities.CheckoutDraft{}, fmt.Errorf("%w: negative price", ErrCorruptDraftSnapshot)
	}
	brand := entities.CardBrand(*s.CardBrand)
	switch brand {
	case entities.CardBrandNone, entities.CardBrandVisa, entities.CardBrandMastercard:
	default:
		return entities.CheckoutDraft{}, fmt.Errorf("%w: card brand %q", ErrCorruptDraftSnapshot, brand)
	}

	return entities.CheckoutDraft{
		CurrentStep:     step,
		ProductID:       *s.ProductID,
		ProductName:     *s.ProductName,
		ProductPrice:    *s.ProductPrice,
		CardHolder:      *s.CardHolder,
		CardExpiry:      *s.CardExpiry,
		CardToken:       *s.CardToken,
		CardBrand:       brand,
		CardLast4:       *s.CardLast4,
		DeliveryName:    *s.DeliveryName,
		DeliveryAddress: *s.DeliveryAddress,
		DeliveryCity:    *s.DeliveryCity,
		DeliveryPhone:   *s.DeliveryPhone,
		DeliveryEmail:   *s.DeliveryEmail,
		ClientIP:        *s.ClientIP,
	}, nil
}
