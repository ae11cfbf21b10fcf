package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Session       SessionConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Catalog       CatalogConfig
	Checkout      CheckoutConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := cfg.Checkout.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"LUXAURIS_APP_ENV" required:"true"`
	Port         string `envconfig:"LUXAURIS_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"LUXAURIS_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"LUXAURIS_LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"LUXAURIS_LOG_WARN_STACK" default:"false"`

	// CORSOrigins extends the local development origins, comma separated.
	CORSOrigins []string `envconfig:"LUXAURIS_CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"LUXAURIS_DB_DSN"`

	LegacyHost     string `envconfig:"LUXAURIS_DB_HOST"`
	LegacyPort     int    `envconfig:"LUXAURIS_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"LUXAURIS_DB_USER"`
	LegacyPassword string `envconfig:"LUXAURIS_DB_PASSWORD"`
	LegacyName     string `envconfig:"LUXAURIS_DB_NAME"`
	LegacySSLMode  string `envconfig:"LUXAURIS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"LUXAURIS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"LUXAURIS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"LUXAURIS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"LUXAURIS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"LUXAURIS_REDIS_URL"`
	Address      string        `envconfig:"LUXAURIS_REDIS_ADDR"`
	Password     string        `envconfig:"LUXAURIS_REDIS_PASSWORD"`
	DB           int           `envconfig:"LUXAURIS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"LUXAURIS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"LUXAURIS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"LUXAURIS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"LUXAURIS_REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"LUXAURIS_REDIS_WRITE_TIMEOUT" default:"3s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"LUXAURIS_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"LUXAURIS_JWT_ISSUER" default:"luxauris"`
	ExpirationMinutes int    `envconfig:"LUXAURIS_JWT_EXPIRATION_MINUTES" default:"10080"`
}

// TTL returns the access token lifetime.
func (j JWTConfig) TTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type SessionConfig struct {
	CookieName string `envconfig:"LUXAURIS_SESSION_COOKIE" default:"luxauris_session"`
	CookiePath string `envconfig:"LUXAURIS_SESSION_COOKIE_PATH" default:"/"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"LUXAURIS_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"LUXAURIS_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"LUXAURIS_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"LUXAURIS_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"LUXAURIS_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"LUXAURIS_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"LUXAURIS_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"LUXAURIS_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"LUXAURIS_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"LUXAURIS_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"LUXAURIS_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type CatalogConfig struct {
	FeaturedLimit  int           `envconfig:"LUXAURIS_CATALOG_FEATURED_LIMIT" default:"8"`
	LookupCacheTTL time.Duration `envconfig:"LUXAURIS_CATALOG_LOOKUP_CACHE_TTL" default:"5m"`
}

type CheckoutConfig struct {
	ShippingCents              int    `envconfig:"LUXAURIS_CHECKOUT_SHIPPING_CENTS" default:"50000"`
	FreeShippingThresholdCents int    `envconfig:"LUXAURIS_CHECKOUT_FREE_SHIPPING_THRESHOLD_CENTS" default:"200000"`
	CouponCode                 string `envconfig:"LUXAURIS_CHECKOUT_COUPON_CODE" default:"LUXAURIS10"`
	CouponPercent              int    `envconfig:"LUXAURIS_CHECKOUT_COUPON_PERCENT" default:"10"`
}

func (c CheckoutConfig) validate() error {
	if c.ShippingCents < 0 || c.FreeShippingThresholdCents < 0 {
		return fmt.Errorf("checkout shipping amounts must not be negative")
	}
	if c.CouponPercent < 0 || c.CouponPercent > 100 {
		return fmt.Errorf("%s must be between 0 and 100", EnvCheckoutCouponPercent)
	}
	return nil
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"LUXAURIS_AUTO_MIGRATE" default:"false"`
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
