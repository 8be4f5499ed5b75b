package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "FRESHKART"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv                 = "FRESHKART_APP_ENV"
	EnvPort                   = "FRESHKART_APP_PORT"
	EnvDBDSN                  = "FRESHKART_DB_DSN"
	EnvDBHost                 = "FRESHKART_DB_HOST"
	EnvDBUser                 = "FRESHKART_DB_USER"
	EnvDBName                 = "FRESHKART_DB_NAME"
	EnvRedisURL               = "FRESHKART_REDIS_URL"
	EnvJWTSecret              = "FRESHKART_JWT_SECRET"
	EnvJWTIssuer              = "FRESHKART_JWT_ISSUER"
	EnvJWTExpMins             = "FRESHKART_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "FRESHKART_REFRESH_TOKEN_TTL_MINUTES"
	EnvGCPProjectID           = "FRESHKART_GCP_PROJECT_ID"
	EnvPubSubOrdersTopic      = "FRESHKART_PUBSUB_ORDERS_TOPIC"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App           AppConfig
	Service       ServiceConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Checkout      CheckoutConfig
	GCP           GCPConfig
	PubSub        PubSubConfig
	Outbox        OutboxConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FRESHKART_APP_ENV" required:"true"`
	Port         string `envconfig:"FRESHKART_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"FRESHKART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FRESHKART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"FRESHKART_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"FRESHKART_DB_DSN"`
	Driver string `envconfig:"FRESHKART_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"FRESHKART_DB_HOST"`
	LegacyPort     int    `envconfig:"FRESHKART_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"FRESHKART_DB_USER"`
	LegacyPassword string `envconfig:"FRESHKART_DB_PASSWORD"`
	LegacyName     string `envconfig:"FRESHKART_DB_NAME"`
	LegacySSLMode  string `envconfig:"FRESHKART_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"FRESHKART_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"FRESHKART_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"FRESHKART_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"FRESHKART_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"FRESHKART_REDIS_URL" required:"true"`
	Address      string        `envconfig:"FRESHKART_REDIS_ADDR"`
	Password     string        `envconfig:"FRESHKART_REDIS_PASSWORD"`
	DB           int           `envconfig:"FRESHKART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FRESHKART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FRESHKART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FRESHKART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FRESHKART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FRESHKART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"FRESHKART_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"FRESHKART_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"FRESHKART_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"FRESHKART_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"FRESHKART_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"FRESHKART_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"FRESHKART_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"FRESHKART_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"FRESHKART_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"FRESHKART_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"FRESHKART_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"FRESHKART_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"FRESHKART_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"FRESHKART_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"FRESHKART_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"FRESHKART_AUTO_MIGRATE" default:"false"`
}

type CheckoutConfig struct {
	DeliveryFeeCents       int `envconfig:"FRESHKART_CHECKOUT_DELIVERY_FEE_CENTS" default:"2000"`
	FreeDeliveryAboveCents int `envconfig:"FRESHKART_CHECKOUT_FREE_DELIVERY_ABOVE_CENTS" default:"0"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"FRESHKART_GCP_PROJECT_ID"`
	CredentialsJSON        string `envconfig:"FRESHKART_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"FRESHKART_GOOGLE_APPLICATION_CREDENTIALS"`
}

type PubSubConfig struct {
	OrdersTopic        string `envconfig:"FRESHKART_PUBSUB_ORDERS_TOPIC" default:"fk-order-events"`
	OrdersSubscription string `envconfig:"FRESHKART_PUBSUB_ORDERS_SUBSCRIPTION"`
}

type OutboxConfig struct {
	BatchSize      int `envconfig:"FRESHKART_OUTBOX_PUBLISH_BATCH_SIZE" default:"50"`
	PollIntervalMS int `envconfig:"FRESHKART_OUTBOX_PUBLISH_POLL_MS" default:"500"`
	MaxAttempts    int `envconfig:"FRESHKART_OUTBOX_MAX_ATTEMPTS" default:"10"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
