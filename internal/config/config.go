package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from the YAML file given with -c; every key can be
// overridden by the environment variable named in its env tag.
type Config struct {
	// Environment selects the logger preset: development or production.
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the preset's minimum level.
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	HTTP struct {
		// Addr matches the backend upstream in deploy/nginx.conf.
		Addr string `env:"HTTP_ADDR" env-default:":8000" yaml:"addr"`
		// Timeouts of http.Server.
		ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout cancels the context of slow handlers.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes of 0 keeps the net/http default.
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes caps request bodies. Recipe images arrive inline as base64.
		MaxBodyBytes int64  `env:"HTTP_MAX_BODY_BYTES" env-default:"10485760" yaml:"maxBodyBytes"`
		MetricsPath  string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins is a comma separated list in the environment. "*" allows any.
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"http"`

	// Database connection variables share their names with the db container so
	// both can read prod.env.
	Database struct {
		Username     string `env:"POSTGRES_USER" env-default:"foodgram" yaml:"username"`
		Password     string `env:"POSTGRES_PASSWORD" env-default:"foodgram" yaml:"password"`
		Host         string `env:"DB_HOST" env-default:"localhost" yaml:"host"`
		Port         int    `env:"DB_PORT" env-default:"5432" yaml:"port"`
		SslMode      string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		DatabaseName string `env:"POSTGRES_DB" env-default:"foodgram" yaml:"name"`
		// Pool sizing, see postgres.Options.
		MaxOpenConnections int           `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis holds the connection used for the token denylist.
	Redis struct {
		Addr     string `env:"REDIS_ADDR"     env-default:"localhost:6379" yaml:"addr"`
		Username string `env:"REDIS_USERNAME" env-default:""               yaml:"username"`
		Password string `env:"REDIS_PASSWORD" env-default:""               yaml:"password"`
		DB       int    `env:"REDIS_DB"       env-default:"0"              yaml:"db"`
	} `yaml:"redis"`

	// JWT configures auth token signing and verification.
	JWT struct {
		// PrivateKey is the PEM encoded RSA key tokens are signed with.
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM encoded RSA key tokens are verified with.
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// TTL is the lifetime of issued tokens.
		TTL time.Duration `env:"JWT_TTL" env-default:"720h" yaml:"ttl"`
	} `yaml:"jwt"`

	// Media configures where uploaded images live and how they are addressed.
	Media struct {
		// Root is the directory images are written to (the media volume).
		Root string `env:"MEDIA_ROOT" env-default:"media" yaml:"root"`
		// BaseURL prefixes stored paths in API responses.
		BaseURL string `env:"MEDIA_BASE_URL" env-default:"/media" yaml:"baseUrl"`
		// Serve makes the API server serve Root under /media/ itself.
		Serve bool `env:"MEDIA_SERVE" env-default:"false" yaml:"serve"`
	} `yaml:"media"`

	// Pagination configures list endpoints.
	Pagination struct {
		// DefaultLimit is the page size used when the limit parameter is absent.
		DefaultLimit uint `env:"PAGINATION_DEFAULT_LIMIT" env-default:"6" yaml:"defaultLimit"`
		// MaxLimit caps the limit parameter.
		MaxLimit uint `env:"PAGINATION_MAX_LIMIT" env-default:"100" yaml:"maxLimit"`
	} `yaml:"pagination"`

	// Worker configures the background job runner.
	Worker struct {
		// MaxWorkers bounds concurrently running jobs.
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"4" yaml:"maxWorkers"`
		// MaxAttempts is how many times a failing job is retried.
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout bounds draining HTTP requests and running jobs on exit.
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads configPath and applies environment overrides. A missing file is
// not an error, defaults and the environment apply.
func Load(configPath string) (*Config, error) {
	var cfg Config

	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}
	}

	if cfg.Pagination.MaxLimit < cfg.Pagination.DefaultLimit {
		return nil, fmt.Errorf("pagination max limit %d is below default limit %d",
			cfg.Pagination.MaxLimit, cfg.Pagination.DefaultLimit)
	}

	return &cfg, nil
}
