package balancer

import (
	"fmt"
	"sync"

	"github.com/athebyme/request-router/internal/core/domain"
)

// Registry сопоставляет тип запроса с обслуживающим его сервисом
// сервисы не копируются: реестр хранит только ссылки
type Registry struct {
	mux      sync.RWMutex
	services map[string]*domain.Service
}

func NewRegistry() *Registry {
	return &Registry{services: make(map[string]*domain.Service)}
}

func (r *Registry) RegisterService(requestType string, svc *domain.Service) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.services[requestType] = svc
}

// Resolve возвращает сервис для типа запроса
func (r *Registry) Resolve(requestType string) (*domain.Service, error) {
	r.mux.RLock()
	svc, ok := r.services[requestType]
	r.mux.RUnlock()
	if !ok || svc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownServiceType, requestType)
	}
	return svc, nil
}

// Members резолвит сервис и берет снимок его членов
// пустой сервис - ошибка ErrNoDestinationsAvailable
func (r *Registry) Members(requestType string) (*domain.Service, []*domain.Destination, error) {
	svc, err := r.Resolve(requestType)
	if err != nil {
		return nil, nil, err
	}
	members := svc.Destinations()
	if len(members) == 0 {
		return svc, nil, fmt.Errorf("%w: service %q (type %q)", ErrNoDestinationsAvailable, svc.Name(), requestType)
	}
	return svc, members, nil
}
