//go:generate mockgen -source=driven.go -destination=../../test/mocks/driven_mock.go -package=mocks
//go:generate mockgen -source=driving.go -destination=../../test/mocks/driving_mock.go -package=mocks
package ports

import (
	"context"

	"github.com/athebyme/request-router/internal/core/domain"
	"github.com/athebyme/request-router/internal/core/domain/balancer"
)

// Router определяет основной входящий порт: выбор Destination и попытка admission
// это интерфейс, который ядро предоставляет драйверам (CLI, тесты)
type Router interface {
	// Route выбирает Destination стратегией kind и пытается занять слот
	// перегрузка не ошибка: возвращается Ticket с Admitted == false
	Route(ctx context.Context, kind balancer.Kind, req domain.Request) (*domain.Ticket, error)
	// Strategies возвращает виды стратегий, доступные роутеру
	Strategies() []balancer.Kind
}
