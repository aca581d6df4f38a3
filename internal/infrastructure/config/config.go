package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Activity ActivityConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=localization_system"`
}

type RedisConfig struct {
	Addr        string        `env:"REDIS_ADDR,         default=localhost:6379"`
	Password    string        `env:"REDIS_PASSWORD"`
	DB          int           `env:"REDIS_DB,           default=0"`
	DialTimeout time.Duration `env:"REDIS_DIAL_TIMEOUT, default=5s"`
	// KeyCacheTTL bounds how long a resolved API key record may be served
	// from cache. Revocation invalidates explicitly; the TTL is the backstop.
	KeyCacheTTL time.Duration `env:"APIKEY_CACHE_TTL, default=5m"`
}

type ActivityConfig struct {
	// Workers is the number of audit-trail writer goroutines. Entries are
	// sharded by project so per-project ordering holds at any worker count.
	Workers int `env:"ACTIVITY_WORKERS, default=4"`
	// QueueSize is the per-worker buffer; entries beyond it are dropped and
	// counted rather than blocking request handling.
	QueueSize int `env:"ACTIVITY_QUEUE_SIZE, default=256"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
