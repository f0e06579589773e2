package config

// Environment variable names
const (
	EnvPort          = "PORT"
	EnvLogLevel      = "LOG_LEVEL"
	EnvLogFormat     = "LOG_FORMAT"
	EnvEnvironment   = "ENVIRONMENT"
	EnvServiceName   = "SERVICE_NAME"
	EnvVersion       = "VERSION"
	EnvSimDays       = "SIM_DAYS"
	EnvInventoryFile = "INVENTORY_FILE"

	EnvAPIKey         = "API_KEY"
	EnvTrustedProxies = "TRUSTED_PROXIES"
	EnvRateLimit      = "RATE_LIMIT"
)

// Defaults used when the environment leaves a value unset
const (
	DefaultPort        = 8080
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "gilded-rose"
	DefaultVersion     = "dev"
	DefaultSimDays     = 1
	DefaultRateLimit   = 1000
)
