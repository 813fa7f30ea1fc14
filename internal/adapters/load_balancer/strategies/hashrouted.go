package strategies

import (
	"github.com/athebyme/request-router/internal/core/domain"
	"github.com/athebyme/request-router/internal/core/domain/balancer"
	"github.com/cespare/xxhash/v2"
)

// HashRoutedStrategy реализует sticky-роутинг: index = xxhash64(request.ID) mod len(members)
//
// для фиксированного снимка членов один и тот же ID всегда попадает в один Destination,
// но это не consistent hashing: добавление или удаление члена перетасовывает большую часть ключей
type HashRoutedStrategy struct {
	*balancer.Registry
}

// NewHashRouted создает новую стратегию Hash-Routed
func NewHashRouted() *HashRoutedStrategy {
	return &HashRoutedStrategy{Registry: balancer.NewRegistry()}
}

// Name возвращает имя стратегии
func (s *HashRoutedStrategy) Name() string {
	return string(balancer.KindHashRouted)
}

// Select выбирает Destination по хешу идентификатора запроса
func (s *HashRoutedStrategy) Select(req domain.Request) (*domain.Destination, error) {
	_, members, err := s.Members(req.Type)
	if err != nil {
		return nil, err
	}
	idx := HashKey(req.ID) % uint64(len(members))
	return members[idx], nil
}

// HashKey - фиксированная 64-битная некриптографическая хеш-функция для ключей роутинга
func HashKey(key string) uint64 {
	return xxhash.Sum64String(key)
}

var _ balancer.BalancingStrategy = (*HashRoutedStrategy)(nil)
