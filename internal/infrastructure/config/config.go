package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is read once at startup from the environment (a .env file is
// loaded by godotenv/autoload in main).
type Config struct {
	Http     Http
	Payments Payments
	Storage  Storage
	Redis    Redis
	Kafka    Kafka
	Checkout Checkout

	IPLookupURL string `validate:"omitempty,url"`
}

type Http struct {
	Port string `validate:"required,numeric"`
}

type Payments struct {
	Gateway string `validate:"required,oneof=simulated wompi mercadopago"`
	Mock    bool

	WompiURL    string `validate:"omitempty,url"`
	WompiPubKey string `validate:"required_if=Gateway wompi"`
	WompiPrvKey string `validate:"required_if=Gateway wompi"`

	MercadoPagoAccessToken string

	SimulatedDelay time.Duration `validate:"gte=0"`
}

type Storage struct {
	Draft        string `validate:"required,oneof=memory redis dynamodb"`
	Transactions string `validate:"required,oneof=memory dynamodb"`
	Catalog      string `validate:"required,oneof=static dynamodb"`
}

type Redis struct {
	Addr     string        `validate:"omitempty,hostname_port"`
	StateTTL time.Duration `validate:"gte=0"`
}

type Kafka struct {
	Brokers      []string      `validate:"omitempty,dive,hostname_port"`
	Topic        string        `validate:"required_with=Brokers"`
	BatchTimeout time.Duration `validate:"gte=0"`
}

type Checkout struct {
	CountdownStart       int           `validate:"gte=1"`
	CountdownTick        time.Duration `validate:"gt=0"`
	SessionIdleTTL       time.Duration `validate:"gt=0"`
	DefaultCustomerEmail string        `validate:"omitempty,email"`
}

func New() Config {
	return Config{
		Http: Http{
			Port: env("PORT", "8080"),
		},

		Payments: Payments{
			Gateway:                strings.ToLower(env("PAYMENT_GATEWAY", "simulated")),
			Mock:                   envBool("PAYMENT_GATEWAY_MOCK") || envBool("MERCADOPAGO_MOCK"),
			WompiURL:               env("WOMPI_URL", "https://api-sandbox.co.uat.wompi.dev/v1"),
			WompiPubKey:            env("WOMPI_PUB_KEY", ""),
			WompiPrvKey:            env("WOMPI_PRV_KEY", ""),
			MercadoPagoAccessToken: env("MERCADOPAGO_ACCESS_TOKEN", ""),
			SimulatedDelay:         envDuration("SIMULATED_GATEWAY_DELAY", 2*time.Second),
		},

		Storage: Storage{
			Draft:        strings.ToLower(env("DRAFT_STORAGE", "memory")),
			Transactions: strings.ToLower(env("TRANSACTION_STORAGE", "memory")),
			Catalog:      strings.ToLower(env("CATALOG_SOURCE", "static")),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", "localhost:6379"),
			StateTTL: envDuration("REDIS_STATE_TTL", 24*time.Hour),
		},

		Kafka: Kafka{
			Brokers:      envList("KAFKA_BROKERS"),
			Topic:        env("KAFKA_TOPIC", "transaction.completed"),
			BatchTimeout: envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Checkout: Checkout{
			CountdownStart:       envInt("STATUS_COUNTDOWN", 10),
			CountdownTick:        envDuration("STATUS_TICK", time.Second),
			SessionIdleTTL:       envDuration("SESSION_IDLE_TTL", 30*time.Minute),
			DefaultCustomerEmail: env("DEFAULT_CUSTOMER_EMAIL", "cliente@example.com"),
		},

		IPLookupURL: env("IPIFY_URL", "https://api.ipify.org?format=json"),
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// EffectiveGateway is the adapter actually wired: the mock switch forces the
// simulated gateway regardless of PAYMENT_GATEWAY.
func (c Config) EffectiveGateway() string {
	if c.Payments.Mock {
		return "simulated"
	}
	return c.Payments.Gateway
}

// env treats an empty variable as unset.
func env(key string, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func envBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func envList(key string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
