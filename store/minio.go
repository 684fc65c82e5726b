package store

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"
)

// Media wraps the object-storage client used for uploaded files.
// PublicHost is the host returned to browsers in media URLs, which
// is usually not the address the server itself uploads through.
type Media struct {
	Client     *minio.Client
	Bucket     string
	PublicHost string
}

func NewMedia(endpoint, accessKey, secretKey, bucket, publicHost string) (*Media, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	if publicHost == "" {
		publicHost = endpoint
	}
	log.Info().Str("endpoint", endpoint).Str("bucket", bucket).Msg("object storage connected")
	return &Media{Client: client, Bucket: bucket, PublicHost: publicHost}, nil
}
