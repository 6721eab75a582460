package s3

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/logger"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// Storage keeps media blobs in an S3-compatible bucket.
type Storage struct {
	client *minio.Client
	bucket string
	logger *logger.Logger
}

// NewStorage connects to the endpoint and creates the bucket when it is missing.
func NewStorage(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool, log *logger.Logger) (*Storage, error) {
	log.Info("Initializing S3 storage", zap.String("endpoint", endpoint), zap.String("bucket", bucket), zap.Bool("use_ssl", useSSL))

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for endpoint %s: %w", endpoint, err)
	}

	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		exists, errExists := client.BucketExists(ctx, bucket)
		if errExists != nil || !exists {
			log.Error("Failed to make or verify bucket", zap.String("bucket", bucket), zap.NamedError("make_error", err), zap.NamedError("exists_error", errExists))
			return nil, fmt.Errorf("failed to make/verify bucket %s: (make: %v / exists_check: %v)", bucket, err, errExists)
		}
		log.Info("Bucket already exists", zap.String("bucket", bucket))
	} else {
		log.Info("Bucket created", zap.String("bucket", bucket))
	}

	return &Storage{
		client: client,
		bucket: bucket,
		logger: log.Named("S3Storage"),
	}, nil
}

// objectKey builds folder/uuid.ext so uploads never collide.
func objectKey(folder, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return path.Join(strings.Trim(folder, "/"), uuid.New().String()+ext)
}

func objectURL(endpoint, bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(endpoint, "/"), bucket, key)
}

// Upload stores the file under a fresh key. The asset's PublicID is the object key.
func (s *Storage) Upload(ctx context.Context, folder string, file domain.MediaFile) (*domain.MediaAsset, error) {
	if file.Content == nil {
		return nil, fmt.Errorf("%w: empty upload %q", domain.ErrInvalidInput, file.Name)
	}
	key := objectKey(folder, file.Name)
	size := file.Size
	if size <= 0 {
		size = -1
	}

	info, err := s.client.PutObject(ctx, s.bucket, key, file.Content, size, minio.PutObjectOptions{
		ContentType:  file.ContentType,
		UserMetadata: map[string]string{"original-filename": file.Name},
	})
	if err != nil {
		s.logger.Error("PutObject failed", zap.String("bucket", s.bucket), zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("failed to upload object %s to bucket %s: %w", key, s.bucket, err)
	}

	s.logger.Info("File uploaded", zap.String("key", info.Key), zap.String("etag", info.ETag), zap.Int64("size", info.Size))
	return &domain.MediaAsset{
		URL:      objectURL(s.client.EndpointURL().String(), s.bucket, key),
		PublicID: key,
	}, nil
}

// Delete removes the object. Removing a missing object is not an error.
func (s *Storage) Delete(ctx context.Context, publicID string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, publicID, minio.RemoveObjectOptions{}); err != nil {
		s.logger.Error("RemoveObject failed", zap.String("bucket", s.bucket), zap.String("key", publicID), zap.Error(err))
		return fmt.Errorf("failed to remove object %s from bucket %s: %w", publicID, s.bucket, err)
	}
	s.logger.Info("File removed", zap.String("key", publicID))
	return nil
}
