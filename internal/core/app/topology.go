package app

import (
	"fmt"
	"sync"

	"github.com/athebyme/request-router/internal/core/domain"
	"github.com/athebyme/request-router/internal/core/domain/balancer"
	"github.com/athebyme/request-router/internal/core/ports"
)

type DestinationSpec struct {
	Address  string
	Capacity int64
}

type ServiceSpec struct {
	Name         string
	RequestTypes []string
	Destinations []DestinationSpec
}

// CounterFactory создает счетчик нагрузки для Destination сервиса service; nil - счетчик в памяти
type CounterFactory func(service, address string) domain.LoadCounter

// Topology владеет сервисами и их Destination и держит привязки типов во всех стратегиях
type Topology struct {
	mux        sync.RWMutex
	services   map[string]*domain.Service
	strategies []balancer.BalancingStrategy
	newCounter CounterFactory
	observer   domain.AdmissionObserver
	logger     ports.Logger
}

// BuildTopology создает сервисы по specs и регистрирует каждый тип запроса в каждой стратегии
func BuildTopology(
	specs []ServiceSpec,
	strategies []balancer.BalancingStrategy,
	newCounter CounterFactory,
	observer domain.AdmissionObserver,
	logger ports.Logger,
) (*Topology, error) {
	t := &Topology{
		services:   make(map[string]*domain.Service, len(specs)),
		strategies: strategies,
		newCounter: newCounter,
		observer:   observer,
		logger:     logger.With("component", "Topology"),
	}

	for _, spec := range specs {
		if _, exists := t.services[spec.Name]; exists {
			return nil, fmt.Errorf("duplicate service %q", spec.Name)
		}
		svc := domain.NewService(spec.Name)
		t.services[spec.Name] = svc

		for _, ds := range spec.Destinations {
			if _, err := t.addDestination(svc, ds); err != nil {
				return nil, err
			}
		}
		for _, rt := range spec.RequestTypes {
			t.bind(rt, svc)
		}
		t.logger.Info("Service configured", "service", spec.Name, "request_types", spec.RequestTypes, "destination_count", svc.Len())
	}
	return t, nil
}

// Service возвращает сервис по имени
func (t *Topology) Service(name string) (*domain.Service, bool) {
	t.mux.RLock()
	defer t.mux.RUnlock()
	svc, ok := t.services[name]
	return svc, ok
}

// Bind привязывает тип запроса к существующему сервису во всех стратегиях
func (t *Topology) Bind(requestType, serviceName string) error {
	svc, ok := t.Service(serviceName)
	if !ok {
		return fmt.Errorf("unknown service %q", serviceName)
	}
	t.bind(requestType, svc)
	return nil
}

// AddDestination добавляет новый Destination в сервис (оператор добавляет мощность)
func (t *Topology) AddDestination(serviceName string, spec DestinationSpec) (*domain.Destination, error) {
	svc, ok := t.Service(serviceName)
	if !ok {
		return nil, fmt.Errorf("unknown service %q", serviceName)
	}
	return t.addDestination(svc, spec)
}

// RemoveDestination убирает Destination с адресом address из сервиса
// возвращает удаленный Destination: запросы, уже занявшие на нем слот, освобождают его как обычно
func (t *Topology) RemoveDestination(serviceName, address string) (*domain.Destination, error) {
	svc, ok := t.Service(serviceName)
	if !ok {
		return nil, fmt.Errorf("unknown service %q", serviceName)
	}
	for _, d := range svc.Destinations() {
		if d.Address() == address && svc.RemoveDestination(d) {
			t.logger.Info("Destination removed", "service", serviceName, "destination", address)
			return d, nil
		}
	}
	return nil, fmt.Errorf("destination %q not found in service %q", address, serviceName)
}

func (t *Topology) addDestination(svc *domain.Service, spec DestinationSpec) (*domain.Destination, error) {
	opts := []domain.DestinationOption{domain.WithObserver(t.observer)}
	if t.newCounter != nil {
		opts = append(opts, domain.WithCounter(t.newCounter(svc.Name(), spec.Address)))
	}

	d, err := domain.NewDestination(spec.Address, spec.Capacity, opts...)
	if err != nil {
		return nil, fmt.Errorf("service %q: %w", svc.Name(), err)
	}
	if !svc.AddDestination(d) {
		return nil, fmt.Errorf("service %q already has destination %q", svc.Name(), spec.Address)
	}
	t.logger.Debug("Destination added", "service", svc.Name(), "destination", spec.Address, "capacity", spec.Capacity)
	return d, nil
}

func (t *Topology) bind(requestType string, svc *domain.Service) {
	for _, s := range t.strategies {
		s.RegisterService(requestType, svc)
	}
	t.logger.Debug("Request type bound", "request_type", requestType, "service", svc.Name())
}
