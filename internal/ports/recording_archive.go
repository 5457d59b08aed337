package ports

import (
	"context"
	"io"
)

// Архив загруженных записей (S3 или null)
type RecordingArchive interface {
	Archive(ctx context.Context, suffix string, r io.Reader, size int64) (key string, err error)
}
