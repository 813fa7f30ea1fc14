package balancer

import (
	"errors"

	"github.com/athebyme/request-router/internal/core/domain"
)

var (
	ErrUnknownServiceType      = errors.New("no service registered for request type")
	ErrNoDestinationsAvailable = errors.New("no destinations available")
	ErrUnknownStrategy         = errors.New("unknown balancing strategy")
)

// BalancingStrategy определяет интерфейс для алгоритмов выбора Destination
// каждая реализация представляет собой отдельный алгоритм балансировки
type BalancingStrategy interface {
	// RegisterService привязывает тип запроса к сервису, прошлая привязка перезаписывается
	RegisterService(requestType string, svc *domain.Service)
	// Select выбирает Destination для запроса
	// возвращает ErrUnknownServiceType или ErrNoDestinationsAvailable; нагрузку не меняет
	Select(req domain.Request) (*domain.Destination, error)
	// Name возвращает имя стратегии (для логирования/конфигурации)
	Name() string
}
