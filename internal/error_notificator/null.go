package error_notificator

import (
	"context"

	"github.com/Vovarama1992/echomind/internal/ports"
)

// NullInfra — телеграм не настроен
type NullInfra struct{}

func (NullInfra) Notify(context.Context, string, error, string) error {
	return ports.ErrNotConfigured
}
