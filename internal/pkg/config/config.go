package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port             string `env:"PORT,               default=8080"`
	Env              string `env:"ENV,                default=development"`
	JWTSecret        string `env:"ACCESS_TOKEN_SECRET, required"`
	PaymentSecretKey string `env:"PAYMENT_SECRET_KEY, required"`
	LogLevel         string `env:"LOG_LEVEL,          default=info"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, required"`
	Database string `env:"MONGO_DB,  default=restaurant"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
// Required secrets missing from the environment fail startup here, never an
// individual request later.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
