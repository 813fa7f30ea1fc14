package ports

import (
	"context"
	"fmt"
	"strings"
)

// PrintfAdapter оборачивает ports.Logger для библиотек, которые логируют через Printf(ctx, ...)
// (go-redis), чтобы их сообщения шли в наш структурированный лог
type PrintfAdapter struct {
	lg Logger
}

// Printf пишет сообщение библиотеки как warning
func (p *PrintfAdapter) Printf(_ context.Context, format string, v ...interface{}) {
	// обрезаю лишние переносы строк
	msg := strings.TrimSpace(fmt.Sprintf(format, v...))
	p.lg.Warn(msg)
}

// NewPrintfLogger создает адаптер, который пишет в ports.Logger
func NewPrintfLogger(logger Logger) *PrintfAdapter {
	return &PrintfAdapter{lg: logger}
}
