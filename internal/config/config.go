package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// minTokenSecretLength is the minimum accepted length for the JWT signing
// secret. Shorter secrets make HS256 tokens brute-forceable.
const minTokenSecretLength = 32

// ErrWeakTokenSecret is returned by Load when the configured JWT secret is too short.
var ErrWeakTokenSecret = errors.New("jwt secret must be at least 32 characters")

// Config represents the application configuration structure.
// Values are read from a yaml file and can be overridden via environment variables.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"accounts" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"accounts" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"accounts" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis contains cache backend configurations
	Redis struct {
		// Addr is the redis server address in host:port form
		Addr string `env:"REDIS_ADDR" env-default:"localhost:6379" yaml:"addr"`
		// Password for redis authentication; empty disables auth
		Password string `env:"REDIS_PASSWORD" env-default:"" yaml:"password"`
		// DB is the redis logical database index
		DB int `env:"REDIS_DB" env-default:"0" yaml:"db"`
		// UserTTL is how long cached user records stay valid
		UserTTL time.Duration `env:"REDIS_USER_TTL" env-default:"1h" yaml:"userTTL"`
	} `yaml:"redis"`

	// JWT contains access token signing configurations
	JWT struct {
		// Secret is the HS256 signing key; must be at least 32 characters
		Secret string `env:"JWT_SECRET" yaml:"secret"`
		// AccessTokenTTL is how long issued access tokens stay valid
		AccessTokenTTL time.Duration `env:"JWT_ACCESS_TOKEN_TTL" env-default:"30m" yaml:"accessTokenTTL"`
	} `yaml:"jwt"`

	// Mail contains SMTP settings for outgoing mail
	Mail struct {
		// Host is the SMTP server hostname
		Host string `env:"MAIL_HOST" env-default:"localhost" yaml:"host"`
		// Port is the SMTP server port
		Port int `env:"MAIL_PORT" env-default:"587" yaml:"port"`
		// Username for SMTP authentication; empty disables auth
		Username string `env:"MAIL_USERNAME" env-default:"" yaml:"username"`
		// Password for SMTP authentication
		Password string `env:"MAIL_PASSWORD" env-default:"" yaml:"password"`
		// From is the sender address used on outgoing mail
		From string `env:"MAIL_FROM" env-default:"no-reply@localhost" yaml:"from"`
	} `yaml:"mail"`

	// Worker contains background job processing configurations
	Worker struct {
		// MaxWorkers caps how many jobs run concurrently in the default queue
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// MailMaxAttempts is how many times a mail job is retried before failing
		MailMaxAttempts int `env:"WORKER_MAIL_MAX_ATTEMPTS" env-default:"5" yaml:"mailMaxAttempts"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// It fails when the JWT secret does not meet the minimum length requirement.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if len(cfg.JWT.Secret) < minTokenSecretLength {
		return nil, ErrWeakTokenSecret
	}

	return &cfg, nil
}
