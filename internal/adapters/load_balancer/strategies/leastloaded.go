package strategies

import (
	"github.com/athebyme/request-router/internal/core/domain"
	"github.com/athebyme/request-router/internal/core/domain/balancer"
)

// LeastLoadedStrategy выбирает Destination с наименьшим числом запросов в работе
// при равенстве побеждает меньший адрес (снимок сервиса уже отсортирован по адресу)
type LeastLoadedStrategy struct {
	*balancer.Registry
}

// NewLeastLoaded создает новую стратегию Least-Loaded
func NewLeastLoaded() *LeastLoadedStrategy {
	return &LeastLoadedStrategy{Registry: balancer.NewRegistry()}
}

// Name возвращает имя стратегии
func (s *LeastLoadedStrategy) Name() string {
	return string(balancer.KindLeastLoaded)
}

// Select выбирает наименее загруженный Destination
func (s *LeastLoadedStrategy) Select(req domain.Request) (*domain.Destination, error) {
	_, members, err := s.Members(req.Type)
	if err != nil {
		return nil, err
	}

	selected := members[0]
	minLoad := selected.InFlight()
	for _, d := range members[1:] {
		// строгое сравнение сохраняет первый по адресу при равенстве
		if load := d.InFlight(); load < minLoad {
			minLoad = load
			selected = d
		}
	}
	return selected, nil
}

var _ balancer.BalancingStrategy = (*LeastLoadedStrategy)(nil)
