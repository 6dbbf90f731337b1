package checks

import (
	"context"
	"fmt"

	"movie-grid/core/storage"
	"movie-grid/feature/catalog"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StorageReport describes the catalog document in object storage.
type StorageReport struct {
	Bucket       string `json:"bucket"`
	Object       string `json:"object"`
	BucketExists bool   `json:"bucket_exists"`
	ObjectExists bool   `json:"object_exists"`
	Size         int64  `json:"size,omitempty"`
	ETag         string `json:"etag,omitempty"`
	Status       string `json:"status"`
}

// CheckStorage verifies that bucket exists and holds the catalog object.
func CheckStorage(ctx context.Context, client storage.Client, bucket, object string) (*StorageReport, error) {
	if client == nil {
		return nil, ErrNotConfigured
	}
	report := &StorageReport{Bucket: bucket, Object: object, Status: StatusMissing}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return report, nil
	}
	report.BucketExists = true

	info, err := client.StatObject(ctx, bucket, object, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return report, nil
		}
		return nil, fmt.Errorf("failed to stat %s/%s: %w", bucket, object, err)
	}

	report.ObjectExists = true
	report.Size = info.Size
	report.ETag = info.ETag
	report.Status = StatusOK
	return report, nil
}

// FixStorage creates the bucket and an empty catalog document when missing.
// An existing document is left untouched.
func FixStorage(ctx context.Context, client storage.Client, bucket, object, region string, logger *zap.Logger) error {
	report, err := CheckStorage(ctx, client, bucket, object)
	if err != nil {
		return err
	}
	if report.Status == StatusOK {
		return nil
	}

	if err := catalog.NewStorageProvider(client, bucket, object).Publish(ctx, nil, region); err != nil {
		logger.Error("Failed to create catalog document", zap.String("object", object), zap.Error(err))
		return err
	}
	logger.Info("Created empty catalog document", zap.String("bucket", bucket), zap.String("object", object))
	return nil
}
