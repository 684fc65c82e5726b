package main

import (
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vikalpis/scroll-app/config"
	"github.com/vikalpis/scroll-app/handlers"
	"github.com/vikalpis/scroll-app/routes"
	"github.com/vikalpis/scroll-app/service"
	"github.com/vikalpis/scroll-app/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	// The connector is opened lazily; the first request that needs
	// the store establishes the single shared connection.
	connector := store.NewConnector(cfg.DatabaseDSN)
	users := store.NewUsers(connector)
	videos := store.NewVideos(connector)

	var cache *redis.Client
	if cfg.RedisAddr != "" {
		var err error
		cache, err = store.NewRedis(cfg.RedisAddr)
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
	}

	var events service.Publisher
	var broker *store.Broker
	if cfg.AMQPURL != "" {
		var err error
		broker, err = store.NewBroker(cfg.AMQPURL)
		if err != nil {
			log.Fatal().Err(err).Msg("rabbitmq connection failed")
		}
		defer broker.Close()
		events = broker
	}

	var media *service.Media
	if cfg.MediaEnabled() {
		objects, err := store.NewMedia(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioPublicHost)
		if err != nil {
			log.Fatal().Err(err).Msg("object storage connection failed")
		}
		media = service.NewMedia(objects)
	}

	sessions := service.NewJWTProvider(cfg.JWTSecret, service.DefaultSessionTTL)

	h := &handlers.Handler{
		Auth:     service.NewAuth(users, sessions),
		Catalog:  service.NewCatalog(videos, cache, events),
		Media:    media,
		Sessions: sessions,
	}

	r := routes.InitRouter(h)
	log.Info().Str("addr", cfg.ListenAddr).Msg("server listening")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
