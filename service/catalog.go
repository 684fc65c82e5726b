package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/vikalpis/scroll-app/models"
)

// VideoStore is the slice of the repository the catalog needs.
type VideoStore interface {
	Create(ctx context.Context, video *models.Video) error
	ListNewest(ctx context.Context) ([]models.Video, error)
}

// Publisher emits catalog events for downstream consumers.
type Publisher interface {
	PublishVideoCreated(ctx context.Context, video *models.Video) error
}

const (
	feedCacheKey = "feed:videos:latest"
	feedCacheTTL = 10 * time.Second
)

// Catalog owns the video record lifecycle. The cache and publisher
// are optional; a nil value disables that path.
type Catalog struct {
	videos VideoStore
	cache  *redis.Client
	events Publisher
}

func NewCatalog(videos VideoStore, cache *redis.Client, events Publisher) *Catalog {
	return &Catalog{videos: videos, cache: cache, events: events}
}

// List returns every video newest first. An empty catalog yields an
// empty slice, never nil. Cache problems fall through to the store.
func (c *Catalog) List(ctx context.Context) ([]models.Video, error) {
	if c.cache != nil {
		if raw, err := c.cache.Get(ctx, feedCacheKey).Result(); err == nil {
			var videos []models.Video
			if json.Unmarshal([]byte(raw), &videos) == nil {
				return videos, nil
			}
		}
	}

	videos, err := c.videos.ListNewest(ctx)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []models.Video{}
	}

	if c.cache != nil && len(videos) > 0 {
		if raw, err := json.Marshal(videos); err == nil {
			if err := c.cache.Set(ctx, feedCacheKey, raw, feedCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("feed cache write failed")
			}
		}
	}
	return videos, nil
}

// Create validates, defaults and persists one video for an
// authenticated caller, then returns the stored record.
func (c *Catalog) Create(ctx context.Context, in models.VideoInput, who *Identity) (*models.Video, error) {
	if who == nil {
		return nil, ErrUnauthorized
	}
	if missing := in.MissingFields(); len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	video := in.Normalize()
	if err := c.videos.Create(ctx, &video); err != nil {
		if errors.Is(err, models.ErrQualityOutOfRange) {
			return nil, &ValidationError{Message: err.Error(), Fields: []string{"transformation.quality"}}
		}
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Del(ctx, feedCacheKey).Err(); err != nil {
			log.Warn().Err(err).Msg("feed cache invalidation failed")
		}
	}
	if c.events != nil {
		if err := c.events.PublishVideoCreated(ctx, &video); err != nil {
			log.Warn().Err(err).Int64("video_id", video.ID).Msg("video.created publish failed")
		}
	}
	return &video, nil
}
