package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs admin session tokens. Required in production.
	JWTSecret string `env:"JWT_SECRET"`
	// AdminPasswordHash is the bcrypt hash of the single admin password.
	// Login is impossible while it is unset.
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
	TokenTTL          time.Duration `env:"TOKEN_TTL, default=2h"`

	// AllowedOrigins is the explicit CORS allow-list; no wildcard or
	// substring matching.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS, default=http://localhost:5173"`

	DataDir        string `env:"DATA_DIR,         default=data"`
	UploadsDir     string `env:"UPLOADS_DIR,      default=uploads"`
	UploadMaxBytes int64  `env:"UPLOAD_MAX_BYTES, default=5242880"`

	// StorageDriver selects the project repository: "jsonfile" (flat
	// JSON documents, the default) or "mongo".
	StorageDriver string `env:"STORAGE_DRIVER, default=jsonfile"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=portfolio"`
}

// RedisConfig configures the token revocation list. An empty Addr keeps
// revocation in-process.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// IsProduction reports whether the service runs with production settings
// (secure cookies, JSON logs).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
