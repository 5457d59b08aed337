package infra

import (
	"context"
	"io"

	"github.com/Vovarama1992/echomind/internal/ports"
)

// NullArchive — S3 не настроен, записи никуда не сохраняются.
type NullArchive struct{}

func NewNullArchive() *NullArchive {
	return &NullArchive{}
}

func (*NullArchive) Archive(context.Context, string, io.Reader, int64) (string, error) {
	return "", ports.ErrNotConfigured
}
