package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Auth      AuthConfig      `yaml:"auth"`
	Serper    SerperConfig    `yaml:"serper"`
	LLM       LLMConfig       `yaml:"llm"`
	Search    SearchConfig    `yaml:"search"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Retention RetentionConfig `yaml:"retention"`
}

// CORSConfig holds CORS settings. The public endpoints are open to any origin.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"authorization,x-client-info,apikey,content-type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds settings for issuing and validating bearer tokens. An
// empty secret disables accounts and token validation, and every request is
// identified only by the ids the client supplies.
type AuthConfig struct {
	JWTSecret         string        `yaml:"jwt_secret"           env:"AUTH_JWT_SECRET"`
	JWTIssuer         string        `yaml:"jwt_issuer"           env:"AUTH_JWT_ISSUER"`
	AccessTokenTTL    time.Duration `yaml:"access_token_ttl"     env:"AUTH_ACCESS_TOKEN_TTL"     env-default:"24h"`
	PasswordHashCost  int           `yaml:"password_hash_cost"   env:"AUTH_PASSWORD_HASH_COST"   env-default:"12"`
	TrustClientUserID bool          `yaml:"trust_client_user_id" env:"AUTH_TRUST_CLIENT_USER_ID" env-default:"true"`
}

// Enabled reports whether bearer token validation is configured.
func (c AuthConfig) Enabled() bool {
	return c.JWTSecret != ""
}

// SerperConfig holds settings for the places-search provider.
type SerperConfig struct {
	APIKey            string        `yaml:"api_key"             env:"SERPER_API_KEY"`
	BaseURL           string        `yaml:"base_url"            env:"SERPER_BASE_URL"            env-default:"https://google.serper.dev"`
	Timeout           time.Duration `yaml:"timeout"             env:"SERPER_TIMEOUT"             env-default:"15s"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"SERPER_REQUESTS_PER_SECOND" env-default:"5"`
	Burst             int           `yaml:"burst"               env:"SERPER_BURST"               env-default:"5"`
}

// LLMConfig holds settings for the hosted text-generation API.
type LLMConfig struct {
	APIKey      string        `yaml:"api_key"     env:"LLM_API_KEY"`
	BaseURL     string        `yaml:"base_url"    env:"LLM_BASE_URL"`
	Model       string        `yaml:"model"       env:"LLM_MODEL"       env-default:"claude-3-5-haiku-latest"`
	MaxTokens   int64         `yaml:"max_tokens"  env:"LLM_MAX_TOKENS"  env-default:"1000"`
	Temperature float64       `yaml:"temperature" env:"LLM_TEMPERATURE" env-default:"0.7"`
	Timeout     time.Duration `yaml:"timeout"     env:"LLM_TIMEOUT"     env-default:"60s"`
}

// SearchConfig holds facility and places search parameters.
type SearchConfig struct {
	DefaultType     string        `yaml:"default_type"      env:"SEARCH_DEFAULT_TYPE"      env-default:"assisted living"`
	DefaultNum      int           `yaml:"default_num"       env:"SEARCH_DEFAULT_NUM"       env-default:"20"`
	MaxResults      int           `yaml:"max_results"       env:"SEARCH_MAX_RESULTS"       env-default:"20"`
	SummaryPlaces   int           `yaml:"summary_places"    env:"SEARCH_SUMMARY_PLACES"    env-default:"5"`
	ResponsePlaces  int           `yaml:"response_places"   env:"SEARCH_RESPONSE_PLACES"   env-default:"10"`
	SummaryTimeout  time.Duration `yaml:"summary_timeout"   env:"SEARCH_SUMMARY_TIMEOUT"   env-default:"45s"`
	FacilityLimit   int           `yaml:"facility_limit"    env:"SEARCH_FACILITY_LIMIT"    env-default:"50"`
	DefaultPriceMin int           `yaml:"default_price_min" env:"SEARCH_DEFAULT_PRICE_MIN" env-default:"3000"`
	DefaultPriceMax int           `yaml:"default_price_max" env:"SEARCH_DEFAULT_PRICE_MAX" env-default:"6000"`
}

// RateLimitConfig holds inbound per-client request limits.
type RateLimitConfig struct {
	SearchPerMinute int           `yaml:"search_per_minute" env:"RATELIMIT_SEARCH_PER_MINUTE" env-default:"30"`
	ChatPerMinute   int           `yaml:"chat_per_minute"   env:"RATELIMIT_CHAT_PER_MINUTE"   env-default:"20"`
	AuthPerMinute   int           `yaml:"auth_per_minute"   env:"RATELIMIT_AUTH_PER_MINUTE"   env-default:"10"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATELIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}

// RetentionConfig controls how long stored search results are kept.
type RetentionConfig struct {
	SearchResultDays int `yaml:"search_result_days" env:"RETENTION_SEARCH_RESULT_DAYS" env-default:"90"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
