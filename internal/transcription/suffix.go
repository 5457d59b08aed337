package transcription

import "strings"

// AudioSuffix угадывает контейнер по имени файла, всё неизвестное считаем wav.
func AudioSuffix(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".webm"):
		return ".webm"
	case strings.HasSuffix(filename, ".mp3"):
		return ".mp3"
	default:
		return ".wav"
	}
}
