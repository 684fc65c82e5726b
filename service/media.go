package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/vikalpis/scroll-app/store"
)

// Media uploads files to object storage and hands back the public
// URLs that go into a create payload.
type Media struct {
	store *store.Media
}

func NewMedia(s *store.Media) *Media {
	return &Media{store: s}
}

func (m *Media) UploadVideo(ctx context.Context, r io.Reader, size int64, filename string) (string, error) {
	return m.upload(ctx, r, size, filename, "videos", "video/mp4")
}

func (m *Media) UploadThumbnail(ctx context.Context, r io.Reader, size int64, filename string) (string, error) {
	return m.upload(ctx, r, size, filename, "thumbnails", "image/jpeg")
}

func (m *Media) upload(ctx context.Context, r io.Reader, size int64, filename, prefix, contentType string) (string, error) {
	ext := filepath.Ext(filename)
	objectName := fmt.Sprintf("%s/%d%s", prefix, time.Now().UnixNano(), ext)

	_, err := m.store.Client.PutObject(ctx, m.store.Bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("http://%s/%s/%s", m.store.PublicHost, m.store.Bucket, objectName), nil
}
