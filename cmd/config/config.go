package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment string `envconfig:"APP_ENV" default:"development"`
	// LogLevel overrides the environment's default level (debug, info, warn, error).
	LogLevel string `envconfig:"LOG_LEVEL"`
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Auth        AuthConfig
	Cart        CartConfig
	Stock       StockConfig
	Internal    InternalConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"10s"`
	IdleTimeout  time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"127.0.0.1"`
	Port            int           `envconfig:"DB_PORT" default:"3306"`
	User            string        `envconfig:"DB_USER" default:"root"`
	Password        string        `envconfig:"DB_PASSWORD"`
	Name            string        `envconfig:"DB_NAME" default:"storefront"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"127.0.0.1"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`

	PoolSize     int           `envconfig:"REDIS_POOL_SIZE" default:"20"`
	DialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"REDIS_WRITE_TIMEOUT" default:"3s"`
}

type RabbitMQConfig struct {
	Host     string `envconfig:"RABBITMQ_HOST" default:"127.0.0.1"`
	Port     int    `envconfig:"RABBITMQ_PORT" default:"5672"`
	User     string `envconfig:"RABBITMQ_USER" default:"guest"`
	Password string `envconfig:"RABBITMQ_PASSWORD" default:"guest"`
}

type AuthConfig struct {
	JWTSecret      string        `envconfig:"JWT_SECRET" required:"true"`
	JWTExpiration  time.Duration `envconfig:"JWT_EXPIRATION" default:"24h"`
	SessionExpTime time.Duration `envconfig:"SESSION_EXP_TIME" default:"24h"`
}

type CartConfig struct {
	CookieName  string        `envconfig:"CART_COOKIE_NAME" default:"cart_token"`
	ExpireAfter time.Duration `envconfig:"CART_EXPIRE_AFTER" default:"24h"`
	Currency    string        `envconfig:"CART_DEFAULT_CURRENCY" default:"EUR"`
}

type StockConfig struct {
	// LedgerMaxRetries bounds how often a transaction is replayed after a deadlock or lock-wait timeout.
	LedgerMaxRetries int `envconfig:"STOCK_LEDGER_MAX_RETRIES" default:"3"`
	// DefaultWarehouseID pins reservations and availability to one location; 0 uses every active warehouse.
	DefaultWarehouseID uint64 `envconfig:"STOCK_DEFAULT_WAREHOUSE_ID" default:"0"`
	// CheckoutLockTTL is how long one checkout may hold the per-cart redis lock.
	CheckoutLockTTL time.Duration `envconfig:"STOCK_CHECKOUT_LOCK_TTL" default:"30s"`
}

type InternalConfig struct {
	APIKey  string `envconfig:"INTERNAL_API_KEY" required:"true"`
	BaseURL string `envconfig:"INTERNAL_BASE_URL" default:"http://localhost:8080"`
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// GetDSN pins the session time zone to UTC so NOW() agrees with the parsed timestamps.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC&time_zone=%%27%%2B00%%3A00%%27",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}
