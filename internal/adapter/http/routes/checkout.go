package routes

import (
	"storefront_checkout/internal/adapter/http/handlers"
	"storefront_checkout/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts     = "/products"
	PathCheckout     = "/checkout"
	PathTransactions = "/transactions"
)

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	products := rg.Group(PathProducts)
	{
		products.GET("", h.ListProducts)
		products.POST("/reload", h.ReloadProducts)
	}
}

func addCheckoutRoutes(rg *gin.RouterGroup, h *handlers.CheckoutHandler) {
	checkout := rg.Group(PathCheckout, middleware.Session())
	{
		checkout.GET("", h.GetCheckout)
		checkout.POST("/product", h.SelectProduct)
		checkout.PATCH("/details", h.UpdateDetails)
		checkout.POST("/details/confirm", h.ConfirmDetails)
		checkout.GET("/summary", h.GetSummary)
		checkout.POST("/pay", h.ConfirmPayment)
		checkout.POST("/modify", h.ModifyDetails)
		checkout.GET("/status", h.GetStatus)
		checkout.POST("/home", h.ReturnHome)
		checkout.POST("/retry", h.Retry)
	}
}

func addTransactionRoutes(rg *gin.RouterGroup, h *handlers.TransactionHandler) {
	transactions := rg.Group(PathTransactions)
	{
		transactions.GET("/:transaction_id", h.GetTransaction)
	}
}
