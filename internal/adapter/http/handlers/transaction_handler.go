package handlers

import (
	"errors"
	"net/http"

	response "storefront_checkout/internal/adapter/http/dto/response"
	"storefront_checkout/internal/usecase"
	"storefront_checkout/pkg"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	usecase usecase.ITransactionUseCase
}

func NewTransactionHandler(uc usecase.ITransactionUseCase) *TransactionHandler {
	return &TransactionHandler{usecase: uc}
}

// GetTransaction godoc
// @Summary Get a recorded payment attempt
// @Tags transactions
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} response.TransactionResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /transactions/{transaction_id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	t, err := h.usecase.GetByID(c.Request.Context(), c.Param("transaction_id"))
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransaction(t))
}

func mapTransactionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTransactionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
