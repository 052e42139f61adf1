package config

// EnvPrefix is passed to envconfig; individual keys keep the full name so
// grep against deployment manifests works.
const EnvPrefix = "hemteknik"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "HEMTEKNIK_APP_ENV"
	EnvPort     = "HEMTEKNIK_APP_PORT"
	EnvLogLevel = "HEMTEKNIK_LOG_LEVEL"

	EnvStorageDriver = "HEMTEKNIK_STORAGE_DRIVER"
	EnvRedisURL      = "HEMTEKNIK_REDIS_URL"

	EnvCatalogPath = "HEMTEKNIK_CATALOG_PATH"

	EnvPaymentDelay       = "HEMTEKNIK_PAYMENT_DELAY"
	EnvPaymentSuccessRate = "HEMTEKNIK_PAYMENT_SUCCESS_RATE"
)
