package logadapter

import (
	"io"
	"log/slog"

	"github.com/athebyme/request-router/internal/core/ports"
)

// SlogAdapter реализует порт ports.Logger, используя стандартный пакет log/slog
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapterTo создает новый адаптер slog логгера, пишущий в w
// levelStr задает минимальный уровень логирования (debug, info, warn, error)
// isJSON определяет формат вывода (JSON или Text)
// CLI пишет логи в stderr, чтобы не смешивать их с результатами роутинга
func NewSlogAdapterTo(w io.Writer, levelStr string, isJSON bool, addSource bool) *SlogAdapter {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(levelStr),
		AddSource: addSource, // имя файла и строки откуда был вызов
	}

	var handler slog.Handler // выбираем обработчик (формат вывода)
	if isJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &SlogAdapter{logger: slog.New(handler)}
}

// ParseLevel переводит строковый уровень в slog.Level, по умолчанию info
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ------------ Реализации для ports.Logger -------------------

func (s *SlogAdapter) Debug(msg string, args ...any) {
	s.logger.Debug(msg, args...)
}

func (s *SlogAdapter) Info(msg string, args ...any) {
	s.logger.Info(msg, args...)
}

func (s *SlogAdapter) Warn(msg string, args ...any) {
	s.logger.Warn(msg, args...)
}

func (s *SlogAdapter) Error(msg string, args ...any) {
	s.logger.Error(msg, args...)
}

func (s *SlogAdapter) With(args ...any) ports.Logger {
	return &SlogAdapter{logger: s.logger.With(args...)}
}

var _ ports.Logger = (*SlogAdapter)(nil)
