package strategies

import (
	"fmt"

	"github.com/athebyme/request-router/internal/core/domain/balancer"
)

// Options - настройки, которые влияют на поведение отдельных стратегий
type Options struct {
	// RoundRobinPruneRemoved включает фильтрацию удаленных из сервиса Destination в очереди Round Robin
	RoundRobinPruneRemoved bool
}

// New создает стратегию по ее виду
func New(kind balancer.Kind, opts Options) (balancer.BalancingStrategy, error) {
	switch kind {
	case balancer.KindLeastLoaded:
		return NewLeastLoaded(), nil
	case balancer.KindHashRouted:
		return NewHashRouted(), nil
	case balancer.KindRoundRobin:
		return NewRoundRobin(opts.RoundRobinPruneRemoved), nil
	default:
		return nil, fmt.Errorf("%w: %q", balancer.ErrUnknownStrategy, kind)
	}
}
