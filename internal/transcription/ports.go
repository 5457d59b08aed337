package transcription

import "context"

// Transcriber — голос → текст по пути к файлу
type Transcriber interface {
	Transcribe(ctx context.Context, filePath string) (string, error)
	// Name попадает в плейсхолдер ошибки
	Name() string
}
