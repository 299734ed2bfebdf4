package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "storefront_checkout/docs"
	"storefront_checkout/internal/adapter/http/handlers"
	"storefront_checkout/internal/adapter/http/middleware"
	"storefront_checkout/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Run will start the server and block until SIGINT/SIGTERM.
func Run() {
	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := buildDependencies(ctx, cfg)
	defer deps.close()

	srv := &http.Server{
		Addr:              ":" + cfg.Http.Port,
		Handler:           newRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("[http][server] listening addr=%s gateway=%s", srv.Addr, cfg.EffectiveGateway())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		deps.checkout.RunJanitor(gctx)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Printf("[http][server] shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Printf("Failed to startup the application: %v", err)
		deps.close()
		stop()
		os.Exit(1)
	}
}

func newRouter(deps *dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	catalogHandler := handlers.NewCatalogHandler(deps.catalog)
	checkoutHandler := handlers.NewCheckoutHandler(deps.checkout)
	transactionHandler := handlers.NewTransactionHandler(deps.transactions)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, catalogHandler)
	addCheckoutRoutes(v1, checkoutHandler)
	addTransactionRoutes(v1, transactionHandler)

	// Unknown paths land on the catalog listing.
	router.NoRoute(catalogHandler.ListProducts)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.Metrics())
}
