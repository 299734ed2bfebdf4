package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/domain/validation"
)

// DraftStore holds the in-progress order of one checkout session and writes
// a snapshot through IDraftPersistence after every mutation.
//
// It is not safe for concurrent use; the owning session serializes access.
// Persistence failures are logged and never fail the mutation: the in-memory
// draft stays authoritative for the session.
type DraftStore struct {
	state       entities.CheckoutDraft
	persistence IDraftPersistence
}

var ErrDraftStorageUnavailable = errors.New("checkout draft storage unavailable")

// NewDraftStore rehydrates from persistence. A corrupt snapshot is removed
// and the store starts from defaults. Any other read failure is returned
// wrapped in ErrDraftStorageUnavailable so a stored draft is never masked by
// defaults.
func NewDraftStore(ctx context.Context, persistence IDraftPersistence) (*DraftStore, error) {
	s := &DraftStore{state: entities.NewCheckoutDraft(), persistence: persistence}

	d, found, err := persistence.Load(ctx)
	switch {
	case errors.Is(err, ErrCorruptDraftSnapshot):
		log.Printf("[checkout][draft] discarding snapshot err=%v", err)
		if err := persistence.Clear(ctx); err != nil {
			log.Printf("[checkout][draft] clear failed err=%v", err)
		}
	case err != nil:
		log.Printf("[checkout][draft] load failed err=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrDraftStorageUnavailable, err)
	case found:
		s.state = d
	}
	return s, nil
}

func (s *DraftStore) GetState() entities.CheckoutDraft {
	return s.state
}

func (s *DraftStore) SetStep(ctx context.Context, step entities.CheckoutStep) {
	s.state.CurrentStep = step
	s.persist(ctx)
}

// SetFormData merge-patches the draft. Editing any card field drops an
// existing card token along with its brand and last four digits, and a new
// card number refreshes the detected brand.
func (s *DraftStore) SetFormData(ctx context.Context, patch entities.CheckoutPatch) {
	next := patch.Apply(s.state)
	if patch.TouchesCard() && next.CardToken != "" {
		next.CardToken = ""
		next.CardLast4 = ""
		next.CardBrand = entities.CardBrandNone
	}
	if patch.CardNumber != nil {
		next.CardBrand = validation.DetectBrand(next.CardNumber)
	}
	s.state = next
	s.persist(ctx)
}

// SetCardToken replaces the raw card number and CVV with the gateway token.
func (s *DraftStore) SetCardToken(ctx context.Context, token string, brand entities.CardBrand, last4 string) {
	s.state.CardToken = token
	s.state.CardBrand = brand
	s.state.CardLast4 = last4
	s.state.CardNumber = ""
	s.state.CardCVV = ""
	s.persist(ctx)
}

// SpendCardToken drops a token already sent with a charge and moves the
// draft back to the details step, so a rehydrated session cannot pay the
// same order again without confirming a card.
func (s *DraftStore) SpendCardToken(ctx context.Context) {
	s.state.CardToken = ""
	s.state.CardLast4 = ""
	s.state.CardBrand = entities.CardBrandNone
	s.state.CurrentStep = entities.CheckoutStepDetails
	s.persist(ctx)
}

func (s *DraftStore) SetClientIP(ctx context.Context, ip string) {
	s.state.ClientIP = ip
	s.persist(ctx)
}

// Reset restores defaults and removes the stored snapshot entirely.
func (s *DraftStore) Reset(ctx context.Context) {
	s.state = entities.NewCheckoutDraft()
	if err := s.persistence.Clear(ctx); err != nil {
		log.Printf("[checkout][draft] clear failed err=%v", err)
	}
}

// LoadEmail returns the stored delivery email, if any.
func (s *DraftStore) LoadEmail(ctx context.Context) string {
	email, _, err := s.persistence.LoadEmail(ctx)
	if err != nil {
		log.Printf("[checkout][draft] load email failed err=%v", err)
	}
	return email
}

func (s *DraftStore) persist(ctx context.Context) {
	if err := s.persistence.Save(ctx, s.state); err != nil {
		log.Printf("[checkout][draft] save failed step=%d err=%v", s.state.CurrentStep, err)
	}
}
