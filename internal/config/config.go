package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every runtime setting. Values come from the environment,
// optionally preloaded from a .env file.
type Config struct {
	ListenAddr     string        `envconfig:"LISTEN_ADDR" default:":8000"`
	DBPath         string        `envconfig:"DB_PATH" default:"campus.db"`
	JWTSecret      string        `envconfig:"JWT_SECRET" default:"your-secret-key-here"`
	TokenTTL       time.Duration `envconfig:"TOKEN_TTL" default:"30m"`
	StaticDir      string        `envconfig:"STATIC_DIR" default:"static"`
	SeedOnStart    bool          `envconfig:"SEED_ON_START" default:"true"`
	TrustedProxies []string      `envconfig:"TRUSTED_PROXIES"`
}

// Load reads .env (if present) then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
