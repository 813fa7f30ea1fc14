package strategies

import (
	"fmt"
	"sync"

	"github.com/athebyme/request-router/internal/core/domain"
	"github.com/athebyme/request-router/internal/core/domain/balancer"
)

// RoundRobinStrategy реализует стратегию Round Robin с очередью ротации на каждый тип запроса
//
// очередь заполняется снимком сервиса только когда она пуста, поэтому изменения членства
// между полными оборотами не видны, пока очередь не опустеет. удаленный из сервиса
// Destination продолжает выдаваться; с pruneRemoved такие записи отбрасываются
type RoundRobinStrategy struct {
	*balancer.Registry

	pruneRemoved bool

	queuesMux sync.RWMutex
	queues    map[string]*rotation // ключ - тип запроса, а не сервис
}

// rotation - очередь одного типа запроса со своим замком,
// чтобы не сериализовать несвязанный трафик
type rotation struct {
	mux   sync.Mutex
	queue []*domain.Destination
}

// NewRoundRobin создает новую стратегию Round Robin
func NewRoundRobin(pruneRemoved bool) *RoundRobinStrategy {
	return &RoundRobinStrategy{
		Registry:     balancer.NewRegistry(),
		pruneRemoved: pruneRemoved,
		queues:       make(map[string]*rotation),
	}
}

// Name возвращает имя стратегии
func (s *RoundRobinStrategy) Name() string {
	return string(balancer.KindRoundRobin)
}

// Select возвращает голову очереди и переставляет ее в хвост
func (s *RoundRobinStrategy) Select(req domain.Request) (*domain.Destination, error) {
	svc, members, err := s.Members(req.Type)
	if err != nil {
		return nil, err
	}

	rot := s.rotationFor(req.Type)
	rot.mux.Lock()
	defer rot.mux.Unlock()

	if s.pruneRemoved {
		rot.prune(svc)
		if len(rot.queue) == 0 {
			// снимок мог устареть, пока ждали замок
			members = svc.Destinations()
			if len(members) == 0 {
				return nil, fmt.Errorf("%w: service %q (type %q)", balancer.ErrNoDestinationsAvailable, svc.Name(), req.Type)
			}
		}
	}

	if len(rot.queue) == 0 {
		rot.queue = append(rot.queue, members...)
	}

	head := rot.queue[0]
	rot.queue = append(rot.queue[1:], head)
	return head, nil
}

func (s *RoundRobinStrategy) rotationFor(requestType string) *rotation {
	s.queuesMux.RLock()
	rot, ok := s.queues[requestType]
	s.queuesMux.RUnlock()
	if ok {
		return rot
	}

	s.queuesMux.Lock()
	defer s.queuesMux.Unlock()
	if rot, ok = s.queues[requestType]; !ok {
		rot = &rotation{}
		s.queues[requestType] = rot
	}
	return rot
}

// prune выбрасывает из очереди записи, которых уже нет в сервисе
func (r *rotation) prune(svc *domain.Service) {
	kept := r.queue[:0]
	for _, d := range r.queue {
		if svc.Contains(d) {
			kept = append(kept, d)
		}
	}
	for i := len(kept); i < len(r.queue); i++ {
		r.queue[i] = nil
	}
	r.queue = kept
}

var _ balancer.BalancingStrategy = (*RoundRobinStrategy)(nil)
