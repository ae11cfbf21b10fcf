package config

// EnvPrefix is handed to envconfig; every field carries its full variable name.
const EnvPrefix = "LUXAURIS"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv                = "LUXAURIS_APP_ENV"
	EnvPort                  = "LUXAURIS_APP_PORT"
	EnvLogLevel              = "LUXAURIS_LOG_LEVEL"
	EnvDBDSN                 = "LUXAURIS_DB_DSN"
	EnvDBHost                = "LUXAURIS_DB_HOST"
	EnvDBUser                = "LUXAURIS_DB_USER"
	EnvDBName                = "LUXAURIS_DB_NAME"
	EnvDBPassword            = "LUXAURIS_DB_PASSWORD"
	EnvRedisURL              = "LUXAURIS_REDIS_URL"
	EnvJWTSecret             = "LUXAURIS_JWT_SECRET"
	EnvJWTIssuer             = "LUXAURIS_JWT_ISSUER"
	EnvJWTExpMins            = "LUXAURIS_JWT_EXPIRATION_MINUTES"
	EnvSessionCookie         = "LUXAURIS_SESSION_COOKIE"
	EnvCatalogFeaturedLimit  = "LUXAURIS_CATALOG_FEATURED_LIMIT"
	EnvCheckoutCouponCode    = "LUXAURIS_CHECKOUT_COUPON_CODE"
	EnvCheckoutCouponPercent = "LUXAURIS_CHECKOUT_COUPON_PERCENT"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
