package handlers

import (
	"errors"
	"io"
	"net/http"

	"storefront_checkout/internal/adapter/http/dto/request"
	response "storefront_checkout/internal/adapter/http/dto/response"
	"storefront_checkout/internal/adapter/http/middleware"
	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase"
	"storefront_checkout/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
)

// CheckoutHandler exposes the checkout state machine of the caller's
// session. Every route runs behind middleware.Session.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// GetCheckout godoc
// @Summary Current checkout view of the session
// @Tags checkout
// @Produce json
// @Param X-Checkout-Session header string false "Checkout session id"
// @Success 200 {object} response.CheckoutViewResponse
// @Router /checkout [get]
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	view, err := h.usecase.GetCheckout(c.Request.Context(), middleware.SessionID(c))
	h.renderView(c, view, err)
}

// SelectProduct godoc
// @Summary Start a checkout for a product
// @Tags checkout
// @Accept json
// @Produce json
// @Param payload body request.SelectProductRequest true "Product"
// @Success 200 {object} response.CheckoutViewResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /checkout/product [post]
func (h *CheckoutHandler) SelectProduct(c *gin.Context) {
	var payload request.SelectProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	view, err := h.usecase.SelectProduct(c.Request.Context(), middleware.SessionID(c), payload.ResolveProductID())
	h.renderView(c, view, err)
}

// UpdateDetails godoc
// @Summary Merge-patch the details form
// @Tags checkout
// @Accept json
// @Produce json
// @Param payload body request.CheckoutDetailsRequest true "Form fields"
// @Success 200 {object} response.CheckoutViewResponse
// @Router /checkout/details [patch]
func (h *CheckoutHandler) UpdateDetails(c *gin.Context) {
	patch, ok := bindDetails(c, false)
	if !ok {
		return
	}
	view, err := h.usecase.UpdateDetails(c.Request.Context(), middleware.SessionID(c), patch)
	h.renderView(c, view, err)
}

// ConfirmDetails godoc
// @Summary Validate the details form and continue to the summary
// @Tags checkout
// @Accept json
// @Produce json
// @Param payload body request.CheckoutDetailsRequest false "Final form fields"
// @Success 200 {object} response.CheckoutViewResponse
// @Failure 422 {object} pkg.HTTPError
// @Failure 502 {object} pkg.HTTPError
// @Router /checkout/details/confirm [post]
func (h *CheckoutHandler) ConfirmDetails(c *gin.Context) {
	patch, ok := bindDetails(c, true)
	if !ok {
		return
	}
	view, err := h.usecase.ConfirmDetails(c.Request.Context(), middleware.SessionID(c), patch)
	h.renderView(c, view, err)
}

// GetSummary godoc
// @Summary Order summary with fees and total
// @Tags checkout
// @Produce json
// @Success 200 {object} response.CheckoutSummaryResponse
// @Router /checkout/summary [get]
func (h *CheckoutHandler) GetSummary(c *gin.Context) {
	summary, err := h.usecase.GetSummary(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutSummary(summary))
}

// ConfirmPayment godoc
// @Summary Charge the tokenized card
// @Tags checkout
// @Produce json
// @Success 200 {object} response.PaymentStatusResponse
// @Failure 409 {object} pkg.HTTPError
// @Failure 502 {object} pkg.HTTPError
// @Router /checkout/pay [post]
func (h *CheckoutHandler) ConfirmPayment(c *gin.Context) {
	status, err := h.usecase.ConfirmPayment(c.Request.Context(), middleware.SessionID(c))
	h.renderStatus(c, status, err)
}

// ModifyDetails godoc
// @Summary Go back from the summary to the details form
// @Tags checkout
// @Produce json
// @Success 200 {object} response.CheckoutViewResponse
// @Router /checkout/modify [post]
func (h *CheckoutHandler) ModifyDetails(c *gin.Context) {
	view, err := h.usecase.ModifyDetails(c.Request.Context(), middleware.SessionID(c))
	h.renderView(c, view, err)
}

// GetStatus godoc
// @Summary Payment status screen
// @Tags checkout
// @Produce json
// @Success 200 {object} response.PaymentStatusResponse
// @Router /checkout/status [get]
func (h *CheckoutHandler) GetStatus(c *gin.Context) {
	status, err := h.usecase.GetStatus(c.Request.Context(), middleware.SessionID(c))
	h.renderStatus(c, status, err)
}

// ReturnHome godoc
// @Summary Reset the checkout and return to the catalog
// @Tags checkout
// @Produce json
// @Success 200 {object} response.CheckoutViewResponse
// @Router /checkout/home [post]
func (h *CheckoutHandler) ReturnHome(c *gin.Context) {
	view, err := h.usecase.ReturnHome(c.Request.Context(), middleware.SessionID(c))
	h.renderView(c, view, err)
}

// Retry godoc
// @Summary Retry a failed payment from the details form
// @Tags checkout
// @Produce json
// @Success 200 {object} response.CheckoutViewResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /checkout/retry [post]
func (h *CheckoutHandler) Retry(c *gin.Context) {
	view, err := h.usecase.Retry(c.Request.Context(), middleware.SessionID(c))
	h.renderView(c, view, err)
}

func (h *CheckoutHandler) renderView(c *gin.Context, view usecase.CheckoutView, err error) {
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutView(view))
}

func (h *CheckoutHandler) renderStatus(c *gin.Context, status usecase.PaymentStatusView, err error) {
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentStatus(status))
}

// bindDetails decodes the details payload. An empty body is an empty patch
// when allowEmpty is set.
func bindDetails(c *gin.Context, allowEmpty bool) (entities.CheckoutPatch, bool) {
	var payload request.CheckoutDetailsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return entities.CheckoutPatch{}, true
		}
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return entities.CheckoutPatch{}, false
	}
	return payload.ToPatch(), true
}

func renderError(c *gin.Context, err error) {
	appErr := mapCheckoutError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapCheckoutError(err error) *pkg.AppError {
	var validationErr *usecase.DetailsValidationError
	var paymentErr *usecase.PaymentError

	switch {
	case errors.As(err, &validationErr):
		return pkg.NewValidationError("VALIDATION_FAILED", "Checkout details are invalid", response.ValidationFields(validationErr.Fields), http.StatusUnprocessableEntity)
	case errors.As(err, &paymentErr):
		return pkg.NewDomainError("PAYMENT_FAILED", paymentErr.Message, err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrInvalidSession):
		return pkg.NewDomainErrorSimple("INVALID_SESSION", "Invalid checkout session", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductOutOfStock):
		return pkg.NewDomainErrorSimple("OUT_OF_STOCK", "Product out of stock", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCheckoutStep):
		return pkg.NewDomainErrorSimple("INVALID_STEP", "Operation not allowed at the current checkout step", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentInProgress):
		return pkg.NewDomainErrorSimple("PAYMENT_IN_PROGRESS", "A payment is already being processed", http.StatusConflict)
	case errors.Is(err, usecase.ErrRetryNotAllowed):
		return pkg.NewDomainErrorSimple("RETRY_NOT_ALLOWED", "Retry is not allowed for this payment status", http.StatusConflict)
	case errors.Is(err, usecase.ErrCheckoutReset):
		return pkg.NewDomainErrorSimple("CHECKOUT_RESET", "The checkout was reset while the request was in flight", http.StatusConflict)
	case errors.Is(err, usecase.ErrDraftStorageUnavailable):
		return pkg.NewDomainError("CHECKOUT_STORAGE_UNAVAILABLE", "Checkout storage is unavailable, try again", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainError("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
