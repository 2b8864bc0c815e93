package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/saranya-m1904/contract-risk-bot/config"
)

// ReportArchive stores generated PDF reports in object storage. It is
// optional: a nil *ReportArchive is valid and means archiving is disabled.
type ReportArchive struct {
	client *minio.Client
	bucket string
}

// NewReportArchive builds an archive from config. Returns (nil, nil) when
// no endpoint is configured.
func NewReportArchive(cfg *config.ArchiveConfig) (*ReportArchive, error) {
	if cfg.Endpoint == "" {
		return nil, nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create archive client: %w", err)
	}

	return &ReportArchive{client: client, bucket: cfg.Bucket}, nil
}

// Enabled reports whether reports will be archived.
func (a *ReportArchive) Enabled() bool {
	return a != nil
}

// EnsureBucket creates the bucket if it doesn't exist.
func (a *ReportArchive) EnsureBucket(ctx context.Context) error {
	if a == nil {
		return nil
	}

	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check archive bucket: %w", err)
	}
	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create archive bucket: %w", err)
		}
	}
	return nil
}

// Store uploads one rendered report under <tenant>/<analysisID>/.
func (a *ReportArchive) Store(ctx context.Context, tenant, analysisID string, pdf []byte) error {
	if a == nil {
		return nil
	}

	objectName := a.ObjectName(tenant, analysisID)
	_, err := a.client.PutObject(ctx, a.bucket, objectName,
		bytes.NewReader(pdf), int64(len(pdf)),
		minio.PutObjectOptions{ContentType: ReportContentType})
	if err != nil {
		return fmt.Errorf("failed to archive report %s: %w", objectName, err)
	}
	return nil
}

// ObjectName returns the storage key for one analysis' report.
func (a *ReportArchive) ObjectName(tenant, analysisID string) string {
	return fmt.Sprintf("%s/%s/%s", tenant, analysisID, ReportFilename)
}
