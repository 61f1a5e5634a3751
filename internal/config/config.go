package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Store backends
const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"7000"`
	Debug    bool   `env:"DEBUG" envDefault:"false"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Persistence
	Store           string `env:"STORE" envDefault:"mongo"` // mongo, memory
	Mongo           Mongo  `envPrefix:"MONGODB_"`
	CatalogSeedFile string `env:"CATALOG_SEED_FILE"`

	// Tokens and passwords
	Token Token

	// HTTP surface
	CORSOrigins     []string `env:"CORS_ORIGINS" envDefault:"http://localhost:5173,http://localhost:5174" envSeparator:","`
	CartRequireAuth bool     `env:"CART_REQUIRE_AUTH" envDefault:"false"`
	RateLimitRPM    int      `env:"RATE_LIMIT_RPM" envDefault:"120"`
	TrustProxy      bool     `env:"TRUST_PROXY" envDefault:"false"` // key rate limits on X-Forwarded-For / X-Real-IP

	// Events
	Events Events `envPrefix:"AMQP_"`
}

// Mongo contains document store connection parameters.
type Mongo struct {
	URI      string        `env:"URI" envDefault:"mongodb://localhost:27017"`
	Database string        `env:"DATABASE" envDefault:"shop-bazar"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Token contains the single signing secret and credential parameters.
// The same secret signs and verifies every access token.
type Token struct {
	Secret     string        `env:"JWT_SECRET"`
	TTL        time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`
}

// Events contains the optional RabbitMQ publisher parameters. An empty URL disables publishing.
type Events struct {
	URL      string `env:"URL"`
	Exchange string `env:"EXCHANGE" envDefault:"shop-bazar.events"`
}

// Load reads an optional .env file and then configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse(env.ToMap(os.Environ()))
}

// Parse builds a Config from the given environment and validates it
func Parse(environment map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environment}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required settings
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Token.Secret) == "" {
		errs = append(errs, errors.New("JWT_SECRET must be set"))
	}
	if c.Token.TTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be positive"))
	}
	if c.Token.BcryptCost < bcrypt.MinCost || c.Token.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}
	switch c.Store {
	case StoreMongo:
		if c.Mongo.URI == "" {
			errs = append(errs, errors.New("MONGODB_URI must be set"))
		}
		if c.Mongo.Database == "" {
			errs = append(errs, errors.New("MONGODB_DATABASE must be set"))
		}
	case StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown STORE %q (want %s or %s)", c.Store, StoreMongo, StoreMemory))
	}
	if c.RateLimitRPM < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPM must not be negative"))
	}

	return errors.Join(errs...)
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
