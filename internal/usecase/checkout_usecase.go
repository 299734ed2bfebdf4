package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/domain/validation"
	"storefront_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSession       = errors.New("invalid checkout session")
	ErrProductNotFound      = errors.New("product not found")
	ErrProductOutOfStock    = errors.New("product out of stock")
	ErrInvalidCheckoutStep  = errors.New("operation not allowed at the current checkout step")
	ErrPaymentInProgress    = errors.New("payment in progress")
	ErrRetryNotAllowed      = errors.New("retry not allowed for this payment status")
	ErrCheckoutReset        = errors.New("checkout was reset while the request was in flight")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
)

// DefaultPaymentErrorMessage is shown when the gateway gives no message.
const DefaultPaymentErrorMessage = "Error processing the payment"

const clientIPLookupTimeout = 3 * time.Second

// DetailsValidationError is returned when the details form does not pass
// validation. Fields maps field name to message.
type DetailsValidationError struct {
	Fields validation.ErrorSet
}

func (e *DetailsValidationError) Error() string {
	return "checkout details are invalid"
}

// PaymentError is a failed gateway call; Message is safe to show the user.
type PaymentError struct {
	Message string
	Err     error
}

func (e *PaymentError) Error() string {
	return e.Message
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

// CheckoutOptions tunes the flow. Zero values fall back to defaults.
type CheckoutOptions struct {
	CountdownStart       int
	CountdownTick        time.Duration
	SessionIdleTTL       time.Duration
	DefaultCustomerEmail string
	Installments         int
}

func (o CheckoutOptions) withDefaults() CheckoutOptions {
	if o.CountdownStart <= 0 {
		o.CountdownStart = 10
	}
	if o.CountdownTick <= 0 {
		o.CountdownTick = time.Second
	}
	if o.SessionIdleTTL <= 0 {
		o.SessionIdleTTL = 30 * time.Minute
	}
	if o.Installments <= 0 {
		o.Installments = entities.DefaultInstallments
	}
	return o
}

// CheckoutView is the session state rendered by every checkout screen.
type CheckoutView struct {
	SessionID          string
	Screen             Screen
	Draft              entities.CheckoutDraft
	Transaction        entities.TransactionState
	Processing         bool
	PaymentError       string
	CountdownRemaining int
}

// CheckoutSummary is the state 3 screen.
type CheckoutSummary struct {
	ProductID       string
	ProductName     string
	ProductPrice    int64
	BaseFee         int64
	DeliveryFee     int64
	Total           int64
	Currency        string
	CardBrand       entities.CardBrand
	CardLast4       string
	DeliveryName    string
	DeliveryAddress string
	DeliveryCity    string
	Processing      bool
	PaymentError    string
}

// PaymentStatusView is the status screen.
type PaymentStatusView struct {
	TransactionID      *string
	Status             entities.TransactionStatus
	Title              string
	Subtitle           string
	Message            string
	CountdownRemaining int
	RetryAllowed       bool
}

// ICheckoutUseCase drives the checkout state machine of a session:
// catalog -> details -> summary -> status.
//
//go:generate mockgen -source=checkout_usecase.go -destination=../adapter/http/handlers/mocks/checkout_usecase_mock.go -package=mocks
type ICheckoutUseCase interface {
	GetCheckout(ctx context.Context, sessionID string) (CheckoutView, error)
	SelectProduct(ctx context.Context, sessionID, productID string) (CheckoutView, error)
	UpdateDetails(ctx context.Context, sessionID string, patch entities.CheckoutPatch) (CheckoutView, error)
	ConfirmDetails(ctx context.Context, sessionID string, patch entities.CheckoutPatch) (CheckoutView, error)
	GetSummary(ctx context.Context, sessionID string) (CheckoutSummary, error)
	ConfirmPayment(ctx context.Context, sessionID string) (PaymentStatusView, error)
	ModifyDetails(ctx context.Context, sessionID string) (CheckoutView, error)
	GetStatus(ctx context.Context, sessionID string) (PaymentStatusView, error)
	ReturnHome(ctx context.Context, sessionID string) (CheckoutView, error)
	Retry(ctx context.Context, sessionID string) (CheckoutView, error)
}

type CheckoutUseCase struct {
	catalog      ICatalogStore
	gateway      interfaces.IPaymentGateway
	transactions ITransactionUseCase
	ipLookup     interfaces.IClientIPLookup
	validator    *validation.Engine
	opts         CheckoutOptions
	sessions     *sessionRegistry
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

// NewCheckoutUseCase wires the flow. ipLookup may be nil.
func NewCheckoutUseCase(
	catalog ICatalogStore,
	storage interfaces.ICheckoutStateStorage,
	gateway interfaces.IPaymentGateway,
	transactions ITransactionUseCase,
	ipLookup interfaces.IClientIPLookup,
	opts CheckoutOptions,
) *CheckoutUseCase {
	opts = opts.withDefaults()
	return &CheckoutUseCase{
		catalog:      catalog,
		gateway:      gateway,
		transactions: transactions,
		ipLookup:     ipLookup,
		validator:    validation.NewEngine(),
		opts:         opts,
		sessions:     newSessionRegistry(storage, opts.SessionIdleTTL),
	}
}

// RunJanitor evicts idle sessions until ctx is done.
func (u *CheckoutUseCase) RunJanitor(ctx context.Context) {
	u.sessions.runJanitor(ctx)
}

// session resolves and locks the session. Callers must unlock.
func (u *CheckoutUseCase) session(ctx context.Context, sessionID string) (*checkoutSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSession
	}
	s, err := u.sessions.get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.lastSeen = time.Now()
	return s, nil
}

func (u *CheckoutUseCase) GetCheckout(ctx context.Context, sessionID string) (CheckoutView, error) {
	s, err := u.session(ctx, sessionID)
	if err != nil {
		return CheckoutView{}, err
	}
	defer s.mu.Unlock()
	return viewOf(s), nil
}

// SelectProduct starts a new flow for productID. Any previous draft and
// transaction are reset first.
func (u *CheckoutUseCase) SelectProduct(ctx context.Context, sessionID, productID string) (CheckoutView, error) {
	productID = strings.TrimSpace(productID)
	product, ok := u.catalog.GetProduct(productID)
	if !ok {
		log.Printf("[checkout][usecase] select product not found session_id=%s product_id=%q", sessionID, productID)
		return CheckoutView{}, ErrProductNotFound
	}
	if product.OutOfStock() {
		log.Printf("[checkout][usecase] select product out of stock session_id=%s product_id=%s", sessionID, productID)
		return CheckoutView{}, ErrProductOutOfStock
	}

	s, err := u.session(ctx, sessionID)
	if err != nil {
		return CheckoutView{}, err
	}
	defer s.mu.Unlock()
	if s.processing {
		return CheckoutView{}, ErrPaymentInProgress
	}

	s.reset(ctx)
	s.draft.SetFormData(ctx, entities.CheckoutPatch{
		ProductID:    &product.ID,
		ProductName:  &product.Name,
		ProductPrice: &product.Price,
	})
	s.draft.SetStep(ctx, entities.CheckoutStepDetails)
	s.screen = ScreenDetails
	log.Printf("[checkout][usecase] product selected session_id=%s product_id=%s price=%d", s.id, product.ID, product.Price)

	if u.ipLookup != nil {
		go u.lookupClientIP(s, s.generation)
	}
	return viewOf(s), nil
}

// lookupClientIP is fire-and-forget; the result is dropped if the session
// moved on to another flow meanwhile.
func (u *CheckoutUseCase) lookupClientIP(s *checkoutSession, generation uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), clientIPLookupTimeout)
	defer cancel()
	ip := u.ipLookup.GetClientIP(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != generation {
		return
	}
	s.draft.SetClientIP(context.Background(), ip)
}

// UpdateDetails merge-patches form edits on the details screen. Expiry input
// is masked to MM/AA.
func (u *CheckoutUseCase) UpdateDetails(ctx context.Context, sessionID string, patch entities.CheckoutPatch) (CheckoutView, error) {
	s, err := u.session(ctx, sessionID)
	if err != nil {
		return CheckoutView{}, err
	}
	defer s.mu.Unlock()
	if s.screen != ScreenDetails {
		return CheckoutView{}, ErrInvalidCheckoutStep
	}
	if s.processing {
		return CheckoutView{}, ErrPaymentInProgress
	}

	s.draft.SetFormData(ctx, editablePatch(patch))
	return viewOf(s), nil
}

// ConfirmDetails applies the final form values, validates every field and,
// when valid, tokenizes the card and advances to the summary.
func (u *CheckoutUseCase) ConfirmDetails(ctx context.Context, sessionID string, patch entities.CheckoutPatch) (CheckoutView, error) {
	s, err := u.session(ctx, sessionID)
	if err != nil {
		return CheckoutView{}, err
	}
	if s.screen != ScreenDetails {
		s.mu.Unlock()
		return CheckoutView{}, ErrInvalidCheckoutStep
	}
	if s.processing {
		s.mu.Unlock()
		return CheckoutView{}, ErrPaymentInProgress
	}

	s.draft.SetFormData(ctx, editablePatch(patch))
	draft := s.draft.GetState()
	if errs := u.validator.Validate(draft); !errs.Valid() {
		s.mu.Unlock()
		log.Printf("[checkout][usecase] details invalid session_id=%s fields=%d", s.id, len(errs))
		return CheckoutView{}, &DetailsValidationError{Fields: errs}
	}

	if !draft.HasRawCard() {
		// Card already tokenized on an earlier confirm.
		defer s.mu.Unlock()
		s.draft.SetStep(ctx, entities.CheckoutStepSummary)
		s.screen = ScreenSummary
		return viewOf(s), nil
	}
	if u.gateway == nil {
		s.mu.Unlock()
		return CheckoutView{}, ErrGatewayNotConfigured
	}

	s.processing = true
	generation := s.generation
	s.mu.Unlock()

	month, year, _ := validation.SplitExpiry(draft.CardExpiry)
	token, err := u.gateway.TokenizeCard(ctx, entities.CardData{
		Number:     validation.StripSpaces(draft.CardNumber),
		CVC:        draft.CardCVV,
		ExpMonth:   month,
		ExpYear:    year,
		CardHolder: strings.TrimSpace(draft.CardHolder),
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != generation {
		log.Printf("[checkout][usecase] tokenization result dropped session_id=%s", s.id)
		return CheckoutView{}, ErrCheckoutReset
	}
	s.processing = false
	if err != nil {
		log.Printf("[checkout][usecase] tokenization failed session_id=%s gateway=%s err=%v", s.id, u.gateway.Name(), err)
		return CheckoutView{}, &PaymentError{Message: gatewayMessage(err), Err: err}
	}

	s.draft.SetCardToken(ctx, token, validation.DetectBrand(draft.CardNumber), validation.LastFour(draft.CardNumber))
	s.draft.SetStep(ctx, entities.CheckoutStepSummary)
	s.screen = ScreenSummary
	log.Printf("[checkout][usecase] details confirmed session_id=%s brand=%s", s.id, s.draft.GetState().CardBrand)
	return viewOf(s), nil
}

func (u *CheckoutUseCase) GetSummary(ctx context.Context, sessionID string) (CheckoutSummary, error) {
	s, err := u.session(ctx, sessionID)
	if err != nil {
		return CheckoutSummary{}, err
	}
	defer s.mu.Unlock()
	if s.screen != ScreenSummary {
		return CheckoutSummary{}, ErrInvalidCheckoutStep
	}
	return summaryOf(s), nil
}

// ConfirmPayment charges the tokenized card. The gateway call runs outside
// the session lock with the session marked as processing, which rejects a
// second confirm and "modify data" until it resolves.
func (u *CheckoutUseCase) ConfirmPayment(ctx context.Context, sessionID string) (PaymentStatusView, error) {
	s, err := u.session(ctx, sessionID)
	if err != nil {
		return PaymentStatusView{}, err
	}
	if s.screen != ScreenSummary {
		s.mu.Unlock()
		return PaymentStatusView{}, ErrInvalidCheckoutStep
	}
	if s.processing {
		s.mu.Unlock()
		return PaymentStatusView{}, ErrPaymentInProgress
	}
	if u.gateway == nil {
		s.mu.Unlock()
		return PaymentStatusView{}, ErrGatewayNotConfigured
	}

	draft := s.draft.GetState()
	email := draft.DeliveryEmail
	if email == "" {
		email = s.draft.LoadEmail(ctx)
	}
	if email == "" {
		email = u.opts.DefaultCustomerEmail
	}
	s.processing = true
	s.paymentError = ""
	generation := s.generation
	s.mu.Unlock()

	transactionID := uuid.NewString()
	total := entities.OrderTotal(draft.ProductPrice)
	log.Printf("[checkout][usecase] payment start session_id=%s transaction_id=%s product_id=%s total=%d", s.id, transactionID, draft.ProductID, total)

	// Leaving the page does not cancel a charge already sent.
	ctx = context.WithoutCancel(ctx)
	started := time.Now()
	result, err := u.gateway.ProcessPayment(ctx, entities.PaymentRequest{
		TransactionID: transactionID,
		Amount:        total,
		CardToken:     draft.CardToken,
		Installments:  u.opts.Installments,
		CustomerEmail: email,
		Description:   draft.ProductName,
		CardBrand:     draft.CardBrand,
	})
	paymentDuration.WithLabelValues(u.gateway.Name()).Observe(time.Since(started).Seconds())

	if err != nil {
		paymentAttemptsTotal.WithLabelValues(u.gateway.Name(), "ERROR").Inc()
		msg := gatewayMessage(err)
		log.Printf("[checkout][usecase] payment failed session_id=%s transaction_id=%s err=%v", s.id, transactionID, err)

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.generation != generation {
			return PaymentStatusView{}, ErrCheckoutReset
		}
		s.processing = false
		s.paymentError = msg
		return PaymentStatusView{}, &PaymentError{Message: msg, Err: err}
	}
	paymentAttemptsTotal.WithLabelValues(u.gateway.Name(), string(result.Status)).Inc()

	// Stock only moves after a resolved approval, and the record is kept even
	// if the session was reset while the call was in flight.
	if result.Status == entities.TransactionStatusApproved {
		u.catalog.DecrementStock(ctx, draft.ProductID)
	}
	u.record(ctx, s.id, transactionID, draft, email, total, result)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != generation {
		log.Printf("[checkout][usecase] payment result dropped session_id=%s transaction_id=%s status=%s", s.id, transactionID, result.Status)
		return PaymentStatusView{}, ErrCheckoutReset
	}
	s.processing = false
	s.transaction.SetTransaction(transactionID, result.Status)
	if retryAllowed(result.Status) {
		s.draft.SetStep(ctx, entities.CheckoutStepDetails)
	} else {
		s.draft.SpendCardToken(ctx)
	}
	s.screen = ScreenStatus
	u.startCountdown(s)
	log.Printf("[checkout][usecase] payment resolved session_id=%s transaction_id=%s status=%s", s.id, transactionID, result.Status)
	return statusOf(s), nil
}

func (u *CheckoutUseCase) record(ctx context.Context, sessionID, transactionID string, draft entities.CheckoutDraft, email string, total int64, result entities.PaymentResult) {
	if u.transactions == nil {
		return
	}
	_, err := u.transactions.Record(ctx, entities.Transaction{
		ID:             transactionID,
		SessionID:      sessionID,
		ProductID:      draft.ProductID,
		ProductName:    draft.ProductName,
		ProductPrice:   draft.ProductPrice,
		BaseFee:        entities.BaseFee,
		DeliveryFee:    entities.DeliveryFee,
		Amount:         total,
		Currency:       entities.Currency,
		Status:         result.Status,
		Gateway:        u.gateway.Name(),
		ProviderID:     result.ProviderID,
		ProviderStatus: result.ProviderStatus,
		CardBrand:      draft.CardBrand,
		CardLast4:      draft.CardLast4,
		CustomerEmail:  email,
		DeliveryName:   draft.DeliveryName,
		DeliveryCity:   draft.DeliveryCity,
		ClientIP:       draft.ClientIP,
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[checkout][usecase] transaction record failed transaction_id=%s err=%v", transactionID, err)
	}
}

// ModifyDetails returns from the summary to the details form keeping every
// draft field.
func (u *CheckoutUseCase) ModifyDetails(ctx context.Context, sessionID string) (CheckoutView, error) {
	s, err := u.session(ctx, sessionID)
	if err != nil {
		return CheckoutView{}, err
	}
	defer s.mu.Unlock()
	if s.screen != ScreenSummary {
		return CheckoutView{}, ErrInvalidCheckoutStep
	}
	if s.processing {
		return CheckoutView{}, ErrPaymentInProgress
	}
	s.draft.SetStep(ctx, entities.CheckoutStepDetails)
	s.screen = ScreenDetails
	s.paymentError = ""
	return viewOf(s), nil
}

func (u *CheckoutUseCase) GetStatus(ctx context.Context, sessionID string) (PaymentStatusView, error) {
	s, err := u.session(ctx, sessionID)
	if err != nil {
		return PaymentStatusView{}, err
	}
	defer s.mu.Unlock()
	if s.screen != ScreenStatus {
		return PaymentStatusView{}, ErrInvalidCheckoutStep
	}
	return statusOf(s), nil
}

// ReturnHome resets Draft and Transaction and goes back to the catalog. It
// is allowed from any screen; an in-flight payment is not cancelled but its
// result will be dropped.
func (u *CheckoutUseCase) ReturnHome(ctx context.Context, sessionID string) (CheckoutView, error) {
	s, err := u.session(ctx, sessionID)
	if err != nil {
		return CheckoutView{}, err
	}
	defer s.mu.Unlock()
	s.reset(ctx)
	log.Printf("[checkout][usecase] returned home session_id=%s", s.id)
	return viewOf(s), nil
}

// Retry goes back to the details form after a failed payment without
// touching the draft.
func (u *CheckoutUseCase) Retry(ctx context.Context, sessionID string) (CheckoutView, error) {
	s, err := u.session(ctx, sessionID)
	if err != nil {
		return CheckoutView{}, err
	}
	defer s.mu.Unlock()
	if s.screen != ScreenStatus {
		return CheckoutView{}, ErrInvalidCheckoutStep
	}
	if !retryAllowed(s.transaction.GetState().Status) {
		return CheckoutView{}, ErrRetryNotAllowed
	}
	s.stopCountdown()
	s.transaction.Reset()
	s.draft.SetStep(ctx, entities.CheckoutStepDetails)
	s.screen = ScreenDetails
	log.Printf("[checkout][usecase] retry session_id=%s", s.id)
	return viewOf(s), nil
}

// startCountdown replaces any running countdown. Callers hold s.mu.
func (u *CheckoutUseCase) startCountdown(s *checkoutSession) {
	s.stopCountdown()
	ctx, cancel := context.WithCancel(context.Background())
	cd := &countdown{remaining: u.opts.CountdownStart, cancel: cancel}
	s.countdown = cd
	go u.runCountdown(ctx, s, cd)
}

// runCountdown ticks until zero, then resets the session. A tick that finds
// another countdown installed is stale and exits without touching state.
func (u *CheckoutUseCase) runCountdown(ctx context.Context, s *checkoutSession, cd *countdown) {
	ticker := time.NewTicker(u.opts.CountdownTick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		s.mu.Lock()
		if s.countdown != cd {
			s.mu.Unlock()
			return
		}
		cd.remaining--
		if cd.remaining > 0 {
			s.mu.Unlock()
			continue
		}
		s.reset(context.Background())
		s.mu.Unlock()
		log.Printf("[checkout][usecase] countdown elapsed, session reset session_id=%s", s.id)
		return
	}
}

// editablePatch drops product fields, which only SelectProduct may set, and
// masks expiry input.
func editablePatch(p entities.CheckoutPatch) entities.CheckoutPatch {
	p.ProductID = nil
	p.ProductName = nil
	p.ProductPrice = nil
	if p.CardExpiry != nil {
		masked := validation.MaskExpiry(*p.CardExpiry)
		p.CardExpiry = &masked
	}
	return p
}

func gatewayMessage(err error) string {
	var gwErr *interfaces.GatewayError
	if errors.As(err, &gwErr) && strings.TrimSpace(gwErr.Message) != "" {
		return gwErr.Message
	}
	return DefaultPaymentErrorMessage
}

func retryAllowed(status entities.TransactionStatus) bool {
	return status != entities.TransactionStatusApproved && status != entities.TransactionStatusPending
}

func viewOf(s *checkoutSession) CheckoutView {
	return CheckoutView{
		SessionID:          s.id,
		Screen:             s.screen,
		Draft:              s.draft.GetState(),
		Transaction:        s.transaction.GetState(),
		Processing:         s.processing,
		PaymentError:       s.paymentError,
		CountdownRemaining: s.countdownRemaining(),
	}
}

func summaryOf(s *checkoutSession) CheckoutSummary {
	d := s.draft.GetState()
	return CheckoutSummary{
		ProductID:       d.ProductID,
		ProductName:     d.ProductName,
		ProductPrice:    d.ProductPrice,
		BaseFee:         entities.BaseFee,
		DeliveryFee:     entities.DeliveryFee,
		Total:           entities.OrderTotal(d.ProductPrice),
		Currency:        entities.Currency,
		CardBrand:       d.CardBrand,
		CardLast4:       d.CardLast4,
		DeliveryName:    d.DeliveryName,
		DeliveryAddress: d.DeliveryAddress,
		DeliveryCity:    d.DeliveryCity,
		Processing:      s.processing,
		PaymentError:    s.paymentError,
	}
}

func statusOf(s *checkoutSession) PaymentStatusView {
	tx := s.transaction.GetState()
	title, subtitle, message := statusCopy(tx.Status)
	return PaymentStatusView{
		TransactionID:      tx.TransactionID,
		Status:             tx.Status,
		Title:              title,
		Subtitle:           subtitle,
		Message:            message,
		CountdownRemaining: s.countdownRemaining(),
		RetryAllowed:       retryAllowed(tx.Status),
	}
}

func statusCopy(status entities.TransactionStatus) (title, subtitle, message string) {
	switch status {
	case entities.TransactionStatusApproved:
		return "¡Pago aprobado!",
			"Tu compra fue procesada exitosamente",
			"Tu pedido está confirmado. Recibirás tu producto en la dirección indicada en los próximos días hábiles."
	case entities.TransactionStatusPending:
		return "Pago pendiente",
			"Tu pago está siendo procesado",
			"Te notificaremos cuando la entidad financiera confirme el pago."
	default:
		return "Pago rechazado",
			"No pudimos procesar tu pago",
			"Verifica que los datos de tu tarjeta sean correctos e intenta nuevamente. Si el problema persiste contacta a tu banco."
	}
}
