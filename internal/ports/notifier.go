package ports

import "context"

type Notifier interface {
	// Notify — сообщает админу об упавшей интеграции
	Notify(ctx context.Context, component string, err error, details string) error
}
