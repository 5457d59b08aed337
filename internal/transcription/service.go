package transcription

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Vovarama1992/echomind/internal/ports"
	"github.com/Vovarama1992/go-utils/logger"
	"github.com/dustin/go-humanize"
)

type Result struct {
	Transcript string
	Outcome    ports.Outcome
	Err        error
}

type Service struct {
	client   Transcriber
	archive  ports.RecordingArchive
	notifier ports.Notifier
	tmpDir   string
	log      *logger.ZapLogger
}

func NewService(
	client Transcriber,
	archive ports.RecordingArchive,
	notifier ports.Notifier,
	tmpDir string,
	log *logger.ZapLogger,
) *Service {
	return &Service{
		client:   client,
		archive:  archive,
		notifier: notifier,
		tmpDir:   tmpDir,
		log:      log,
	}
}

// Transcribe пишет запись во временный файл (удаляется на любом выходе) и отдаёт его клиенту.
// Ошибка возвращается только при проблемах с локальным файлом; сбои клиента уходят в Result.
func (s *Service) Transcribe(ctx context.Context, filename string, audio io.Reader) (Result, error) {
	suffix := AudioSuffix(filename)

	tmp, err := os.CreateTemp(s.tmpDir, "echomind-*"+suffix)
	if err != nil {
		return Result{}, fmt.Errorf("create temp file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	size, err := io.Copy(tmp, audio)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return Result{}, fmt.Errorf("write temp file: %w", err)
	}

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("received %s (%s) as %s", filename, humanize.Bytes(uint64(size)), suffix),
		Service: "transcription",
	})

	s.archiveRecording(ctx, path, suffix, size)

	text, err := s.client.Transcribe(ctx, path)
	outcome := ports.Classify(err)

	switch outcome {
	case ports.OutcomeFallback:
		return Result{Transcript: DummyTranscript, Outcome: outcome}, nil
	case ports.OutcomeFailed:
		s.log.Log(logger.LogEntry{Level: "error", Message: "transcription failed", Error: err, Service: "transcription"})
		s.notify(ctx, err, filename)
		return Result{
			Transcript: fmt.Sprintf("[%s transcription failed: %v]", s.client.Name(), err),
			Outcome:    outcome,
			Err:        err,
		}, nil
	}

	return Result{Transcript: text, Outcome: ports.OutcomeOK}, nil
}

func (s *Service) archiveRecording(ctx context.Context, path, suffix string, size int64) {
	f, err := os.Open(path)
	if err != nil {
		s.log.Log(logger.LogEntry{Level: "warn", Message: "archive: reopen temp file", Error: err, Service: "transcription"})
		return
	}
	defer f.Close()

	key, err := s.archive.Archive(ctx, suffix, f, size)
	switch {
	case err == nil:
		s.log.Log(logger.LogEntry{Level: "info", Message: "archived recording " + key, Service: "transcription"})
	case ports.Classify(err) == ports.OutcomeFailed:
		s.log.Log(logger.LogEntry{Level: "warn", Message: "archive recording", Error: err, Service: "transcription"})
	}
}

func (s *Service) notify(ctx context.Context, err error, filename string) {
	if nErr := s.notifier.Notify(ctx, "transcription", err, "file: "+filename); nErr != nil && ports.Classify(nErr) == ports.OutcomeFailed {
		s.log.Log(logger.LogEntry{Level: "warn", Message: "notify failed", Error: nErr, Service: "transcription"})
	}
}
