package routes

import (
	"context"
	"log"

	"storefront_checkout/internal/adapter/persistence/repository"
	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/infrastructure/config"
	"storefront_checkout/internal/infrastructure/database"
	"storefront_checkout/internal/infrastructure/events"
	"storefront_checkout/internal/infrastructure/iplookup"
	"storefront_checkout/internal/infrastructure/payments"
	"storefront_checkout/internal/usecase"
	"storefront_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type dependencies struct {
	catalog      *usecase.CatalogStore
	checkout     *usecase.CheckoutUseCase
	transactions *usecase.TransactionUseCase

	closers []func() error
}

// buildDependencies wires the backends selected by cfg. DynamoDB and Redis
// clients are only created when a backend asks for them.
func buildDependencies(ctx context.Context, cfg config.Config) *dependencies {
	deps := &dependencies{}

	var ddb *dynamodb.Client
	dynamo := func() *dynamodb.Client {
		if ddb == nil {
			ddb = database.ConnectDynamoDB(ctx)
		}
		return ddb
	}

	var productRepo interfaces.IProductRepository
	if cfg.Storage.Catalog == "dynamodb" {
		productRepo = repository.NewProductDynamoRepository(dynamo())
	}
	deps.catalog = usecase.NewCatalogStore(entities.DefaultProducts(), productRepo)
	if productRepo != nil {
		deps.catalog.Reload()
	}

	var storage interfaces.ICheckoutStateStorage
	switch cfg.Storage.Draft {
	case "redis":
		client := database.ConnectRedis(ctx, cfg.Redis.Addr)
		deps.closers = append(deps.closers, client.Close)
		storage = repository.NewCheckoutStateRedisRepository(client, cfg.Redis.StateTTL)
	case "dynamodb":
		storage = repository.NewCheckoutStateDynamoRepository(dynamo())
	default:
		storage = repository.NewCheckoutStateMemoryRepository()
	}

	var txRepo interfaces.ITransactionRepository
	if cfg.Storage.Transactions == "dynamodb" {
		txRepo = repository.NewTransactionDynamoRepository(dynamo())
	} else {
		txRepo = repository.NewTransactionMemoryRepository()
	}

	var publisher interfaces.ITransactionEventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher := events.NewKafkaTransactionPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.BatchTimeout)
		deps.closers = append(deps.closers, kafkaPublisher.Close)
		publisher = kafkaPublisher
	}
	deps.transactions = usecase.NewTransactionUseCase(txRepo, publisher)

	gateway, err := payments.NewGateway(cfg)
	if err != nil {
		log.Printf("[checkout][gateway] not configured gateway=%s err=%v", cfg.EffectiveGateway(), err)
	}

	deps.checkout = usecase.NewCheckoutUseCase(
		deps.catalog,
		storage,
		gateway,
		deps.transactions,
		iplookup.NewIpifyClient(cfg.IPLookupURL),
		usecase.CheckoutOptions{
			CountdownStart:       cfg.Checkout.CountdownStart,
			CountdownTick:        cfg.Checkout.CountdownTick,
			SessionIdleTTL:       cfg.Checkout.SessionIdleTTL,
			DefaultCustomerEmail: cfg.Checkout.DefaultCustomerEmail,
		},
	)

	log.Printf("[routes][deps] wired draft=%s transactions=%s catalog=%s events=%t",
		cfg.Storage.Draft, cfg.Storage.Transactions, cfg.Storage.Catalog, publisher != nil)
	return deps
}

// close releases clients in reverse order. It is safe to call twice.
func (d *dependencies) close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			log.Printf("[routes][deps] close failed err=%v", err)
		}
	}
	d.closers = nil
}
