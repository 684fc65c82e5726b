package config

import (
	"os"

	"github.com/rs/zerolog/log"
)

// Config holds everything the process reads from the environment.
// DatabaseDSN is the only required value; the optional backends
// (Redis, MinIO, RabbitMQ) are enabled by setting their address.
type Config struct {
	ListenAddr  string
	DatabaseDSN string
	JWTSecret   string

	RedisAddr string

	MinioEndpoint   string
	MinioAccessKey  string
	MinioSecretKey  string
	MinioBucket     string
	MinioPublicHost string

	AMQPURL string
}

// Load reads the environment and exits the process when the
// database address is missing.
func Load() Config {
	cfg := Config{
		ListenAddr:  getenv("LISTEN_ADDR", ":8080"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		JWTSecret:   getenv("JWT_SECRET", "scroll-app-dev-secret"),

		RedisAddr: os.Getenv("REDIS_ADDR"),

		MinioEndpoint:   os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey:  os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey:  os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:     getenv("MINIO_BUCKET", "videos"),
		MinioPublicHost: os.Getenv("MINIO_PUBLIC_HOST"),

		AMQPURL: os.Getenv("AMQP_URL"),
	}

	if cfg.DatabaseDSN == "" {
		log.Fatal().Msg("DATABASE_DSN must be provided")
	}
	return cfg
}

// MediaEnabled reports whether object storage is configured.
func (c Config) MediaEnabled() bool {
	return c.MinioEndpoint != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
