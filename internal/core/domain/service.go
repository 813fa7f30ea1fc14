package domain

import (
	"sort"
	"sync"
)

// Service - именованное множество Destination, обслуживающих один тип запросов
// никакой логики балансировки здесь нет, только членство
type Service struct {
	name    string
	mux     sync.RWMutex
	members map[string]*Destination // ключ - адрес
}

func NewService(name string) *Service {
	return &Service{
		name:    name,
		members: make(map[string]*Destination),
	}
}

func (s *Service) Name() string { return s.name }

// AddDestination добавляет d в сервис
// повторное добавление того же d - no-op; другой Destination с уже занятым адресом не добавляется
// возвращает true, если членство изменилось
func (s *Service) AddDestination(d *Destination) bool {
	if d == nil {
		return false
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	if _, exists := s.members[d.address]; exists {
		return false
	}
	s.members[d.address] = d
	return true
}

// RemoveDestination убирает d из сервиса; удаление отсутствующего - no-op
// сам Destination при этом продолжает жить у тех, кто на него ссылается
func (s *Service) RemoveDestination(d *Destination) bool {
	if d == nil {
		return false
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	if cur, exists := s.members[d.address]; !exists || cur != d {
		return false
	}
	delete(s.members, d.address)
	return true
}

// Contains проверяет, что именно этот d входит в сервис
func (s *Service) Contains(d *Destination) bool {
	if d == nil {
		return false
	}
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.members[d.address] == d
}

func (s *Service) Len() int {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return len(s.members)
}

// Destinations возвращает снимок членов, отсортированный по адресу
// этот порядок - детерминированный порядок обхода для всех стратегий
func (s *Service) Destinations() []*Destination {
	s.mux.RLock()
	snapshot := make([]*Destination, 0, len(s.members))
	for _, d := range s.members {
		snapshot = append(snapshot, d)
	}
	s.mux.RUnlock()

	sort.Slice(snapshot, func(i, j int) bool {
		return snapshot[i].address < snapshot[j].address
	})
	return snapshot
}
