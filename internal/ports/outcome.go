package ports

import "errors"

// ErrNotConfigured возвращают null-клиенты вместе с fallback-значением.
var ErrNotConfigured = errors.New("integration not configured")

// Outcome — чем закончился вызов внешней интеграции
type Outcome string

const (
	OutcomeOK       Outcome = "ok"
	OutcomeFallback Outcome = "fallback" // клиент не сконфигурирован
	OutcomeFailed   Outcome = "failed"   // клиент есть, вызов упал
)

// Classify раскладывает ошибку клиента по Outcome.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrNotConfigured):
		return OutcomeFallback
	default:
		return OutcomeFailed
	}
}
