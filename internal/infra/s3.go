package infra

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Vovarama1992/echomind/internal/config"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type S3Archive struct {
	client *minio.Client
	bucket string
	now    func() time.Time
}

func NewS3Archive(ctx context.Context, cfg config.S3Config) (*S3Archive, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init S3 client: %w", err)
	}

	// проверим, что бакет существует
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", cfg.Bucket)
	}

	return &S3Archive{
		client: client,
		bucket: cfg.Bucket,
		now:    time.Now,
	}, nil
}

// Archive кладёт запись в бакет и возвращает ключ
func (s *S3Archive) Archive(ctx context.Context, suffix string, r io.Reader, size int64) (string, error) {
	now := s.now()
	key := ObjectKey(now, suffix)

	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType:  ContentType(suffix),
		UserMetadata: map[string]string{"uploaded-at": now.Format(time.RFC3339)},
	})
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	return key, nil
}

// ObjectKey — путь в бакете
func ObjectKey(now time.Time, suffix string) string {
	return fmt.Sprintf("recordings/%s/%s%s", now.Format("2006-01-02"), uuid.NewString(), suffix)
}

func ContentType(suffix string) string {
	switch suffix {
	case ".webm":
		return "audio/webm"
	case ".mp3":
		return "audio/mpeg"
	default:
		return "audio/wav"
	}
}
