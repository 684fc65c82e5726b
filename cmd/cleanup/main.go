// Command cleanup wipes the video catalog and every attached
// backend: the videos table, the media bucket, the feed cache and
// the event queue. User accounts are left alone.
package main

import (
	"context"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vikalpis/scroll-app/config"
	"github.com/vikalpis/scroll-app/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	ctx := context.Background()

	connector := store.NewConnector(cfg.DatabaseDSN)
	db, err := connector.Connect(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	if err := db.Exec("TRUNCATE TABLE videos").Error; err != nil {
		log.Fatal().Err(err).Msg("truncating videos failed")
	}
	log.Info().Msg("videos table cleared")

	if cfg.MediaEnabled() {
		media, err := store.NewMedia(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioPublicHost)
		if err != nil {
			log.Fatal().Err(err).Msg("object storage connection failed")
		}

		objectsCh := make(chan minio.ObjectInfo)
		go func() {
			defer close(objectsCh)
			for object := range media.Client.ListObjects(ctx, media.Bucket, minio.ListObjectsOptions{Recursive: true}) {
				objectsCh <- object
			}
		}()
		for err := range media.Client.RemoveObjects(ctx, media.Bucket, objectsCh, minio.RemoveObjectsOptions{}) {
			log.Warn().Err(err.Err).Str("object", err.ObjectName).Msg("object delete failed")
		}
		log.Info().Str("bucket", media.Bucket).Msg("media bucket cleared")
	}

	if cfg.RedisAddr != "" {
		rdb, err := store.NewRedis(cfg.RedisAddr)
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		if err := rdb.FlushDB(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("cache flush failed")
		} else {
			log.Info().Msg("feed cache cleared")
		}
	}

	if cfg.AMQPURL != "" {
		broker, err := store.NewBroker(cfg.AMQPURL)
		if err != nil {
			log.Fatal().Err(err).Msg("rabbitmq connection failed")
		}
		defer broker.Close()
		if _, err := broker.Channel.QueuePurge(store.EventQueue, false); err != nil {
			log.Warn().Err(err).Msg("queue purge failed")
		} else {
			log.Info().Str("queue", store.EventQueue).Msg("event queue purged")
		}
	}

	log.Info().Msg("cleanup complete")
}
