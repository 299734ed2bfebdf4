package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"

	"golang.org/x/sync/singleflight"
)

const sessionLoadTimeout = 5 * time.Second

// Screen is the view a checkout session is currently showing.
type Screen string

const (
	ScreenCatalog Screen = "catalog"
	ScreenDetails Screen = "details"
	ScreenSummary Screen = "summary"
	ScreenStatus  Screen = "status"
)

// checkoutSession owns the Draft and Transaction stores of one browser
// session. All fields are guarded by mu.
//
// generation increases on every reset; work started under an older
// generation must not touch the session when it completes.
type checkoutSession struct {
	id string

	mu           sync.Mutex
	draft        *DraftStore
	transaction  *TransactionStore
	screen       Screen
	processing   bool
	paymentError string
	generation   uint64
	countdown    *countdown
	lastSeen     time.Time
}

type countdown struct {
	remaining int
	cancel    context.CancelFunc
}

func newCheckoutSession(ctx context.Context, id string, storage interfaces.ICheckoutStateStorage) (*checkoutSession, error) {
	draft, err := NewDraftStore(ctx, NewDraftPersistence(storage, id))
	if err != nil {
		return nil, err
	}
	s := &checkoutSession{
		id:          id,
		draft:       draft,
		transaction: NewTransactionStore(),
		lastSeen:    time.Now(),
	}

	d := draft.GetState()
	switch d.CurrentStep {
	case entities.CheckoutStepDetails:
		s.screen = ScreenDetails
	case entities.CheckoutStepSummary:
		if d.CardToken == "" {
			// The card secrets are never stored, so an untokenized summary
			// cannot be paid; send the user back to the form.
			draft.SetStep(ctx, entities.CheckoutStepDetails)
			s.screen = ScreenDetails
		} else {
			s.screen = ScreenSummary
		}
	default:
		s.screen = ScreenCatalog
	}
	return s, nil
}

// reset clears both stores, cancels the countdown and returns to the
// catalog. Callers hold mu.
func (s *checkoutSession) reset(ctx context.Context) {
	s.stopCountdown()
	s.draft.Reset(ctx)
	s.transaction.Reset()
	s.screen = ScreenCatalog
	s.processing = false
	s.paymentError = ""
	s.generation++
}

func (s *checkoutSession) stopCountdown() {
	if s.countdown != nil {
		s.countdown.cancel()
		s.countdown = nil
	}
}

func (s *checkoutSession) countdownRemaining() int {
	if s.countdown == nil {
		return 0
	}
	return s.countdown.remaining
}

// sessionRegistry maps session ids to live sessions and evicts idle ones.
// Rehydration reads run outside mu; concurrent first requests for the same
// id share one read through loads.
type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*checkoutSession
	loads    singleflight.Group
	storage  interfaces.ICheckoutStateStorage
	idleTTL  time.Duration
	now      func() time.Time
}

func newSessionRegistry(storage interfaces.ICheckoutStateStorage, idleTTL time.Duration) *sessionRegistry {
	return &sessionRegistry{
		sessions: make(map[string]*checkoutSession),
		storage:  storage,
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

func (r *sessionRegistry) lookup(id string) (*checkoutSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

// get returns the session for id, rehydrating it from storage on first use.
// A failed read is returned and nothing is cached, so the next request
// reads again. The returned session is not locked.
func (r *sessionRegistry) get(ctx context.Context, id string) (*checkoutSession, error) {
	if s, ok := r.lookup(id); ok {
		return s, nil
	}

	v, err, _ := r.loads.Do(id, func() (any, error) {
		if s, ok := r.lookup(id); ok {
			return s, nil
		}
		// The read is shared with other callers, so one cancelled request
		// must not fail them all.
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sessionLoadTimeout)
		defer cancel()
		s, err := newCheckoutSession(loadCtx, id, r.storage)
		if err != nil {
			log.Printf("[checkout][session] rehydration failed session_id=%s err=%v", id, err)
			return nil, err
		}

		r.mu.Lock()
		defer r.mu.Unlock()
		if existing, ok := r.sessions[id]; ok {
			return existing, nil
		}
		r.sessions[id] = s
		checkoutSessionsActive.Set(float64(len(r.sessions)))
		log.Printf("[checkout][session] opened session_id=%s screen=%s", id, s.screen)
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*checkoutSession), nil
}

// evictIdle drops sessions not touched within idleTTL. Sessions waiting on a
// payment are kept. Durable snapshots are left in place so a returning
// browser rehydrates its draft.
func (r *sessionRegistry) evictIdle() int {
	cutoff := r.now().Add(-r.idleTTL)

	r.mu.Lock()
	defer r.mu.Unlock()
	evicted := 0
	for id, s := range r.sessions {
		s.mu.Lock()
		idle := !s.processing && s.lastSeen.Before(cutoff)
		if idle {
			s.stopCountdown()
			s.generation++
		}
		s.mu.Unlock()
		if idle {
			delete(r.sessions, id)
			evicted++
		}
	}
	checkoutSessionsActive.Set(float64(len(r.sessions)))
	if evicted > 0 {
		log.Printf("[checkout][session] evicted idle sessions count=%d", evicted)
	}
	return evicted
}

func (r *sessionRegistry) runJanitor(ctx context.Context) {
	interval := r.idleTTL / 2
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.evictIdle()
		}
	}
}
