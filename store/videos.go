package store

import (
	"context"

	"github.com/vikalpis/scroll-app/models"
)

// Videos is the gorm-backed video repository.
type Videos struct {
	c *Connector
}

func NewVideos(c *Connector) *Videos {
	return &Videos{c: c}
}

func (v *Videos) Create(ctx context.Context, video *models.Video) error {
	db, err := v.c.Connect(ctx)
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Create(video).Error
}

// ListNewest returns every video, newest first. The slice is never
// nil so an empty catalog serializes as [] rather than null.
func (v *Videos) ListNewest(ctx context.Context) ([]models.Video, error) {
	db, err := v.c.Connect(ctx)
	if err != nil {
		return nil, err
	}
	videos := []models.Video{}
	if err := db.WithContext(ctx).Order("created_at DESC").Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}
