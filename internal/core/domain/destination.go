//go:generate mockgen -source=destination.go -destination=../../test/mocks/domain_mock.go -package=mocks
package domain

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var ErrInvalidCapacity = errors.New("destination capacity must be positive")

// LoadCounter хранит текущее количество запросов в работе для одного Destination
// реализация по умолчанию живет в памяти процесса, адаптер redis позволяет
// разделить счетчик между несколькими процессами
type LoadCounter interface {
	// TryIncrement увеличивает счетчик на 1, только если он меньше limit
	// возвращает значение после операции и признак того, что увеличение произошло
	TryIncrement(limit int64) (int64, bool, error)
	// Decrement уменьшает счетчик на 1, только если он больше нуля
	Decrement() (int64, bool, error)
	Load() (int64, error)
}

// AdmissionObserver получает события admission control
type AdmissionObserver interface {
	Admitted(d *Destination, inFlight int64)
	Rejected(d *Destination, inFlight int64)
	Released(d *Destination, inFlight int64)
	CounterFailed(d *Destination, err error)
}

// Destination - один бэкенд с ограниченным числом одновременных запросов
// экземпляр разделяется по указателю между Service и стратегиями, копировать его нельзя
type Destination struct {
	address  string
	capacity int64
	counter  LoadCounter
	observer AdmissionObserver
}

type DestinationOption func(*Destination)

// WithObserver задает получателя событий admit/reject/release
func WithObserver(o AdmissionObserver) DestinationOption {
	return func(d *Destination) {
		if o != nil {
			d.observer = o
		}
	}
}

// WithCounter подменяет счетчик нагрузки (например, на redis)
func WithCounter(c LoadCounter) DestinationOption {
	return func(d *Destination) {
		if c != nil {
			d.counter = c
		}
	}
}

// NewDestination создает Destination с адресом address и емкостью capacity
func NewDestination(address string, capacity int64, opts ...DestinationOption) (*Destination, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %s capacity=%d", ErrInvalidCapacity, address, capacity)
	}
	d := &Destination{
		address:  address,
		capacity: capacity,
		counter:  &memoryCounter{},
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

func (d *Destination) Address() string { return d.address }
func (d *Destination) Capacity() int64 { return d.capacity }
func (d *Destination) String() string  { return d.address }

// InFlight возвращает текущую нагрузку
// если счетчик недоступен, Destination считается заполненным
func (d *Destination) InFlight() int64 {
	n, err := d.counter.Load()
	if err != nil {
		d.observer.CounterFailed(d, err)
		return d.capacity
	}
	return n
}

// TryAdmit резервирует один слот емкости
// false означает перегрузку, это нормальный исход, а не ошибка
func (d *Destination) TryAdmit() bool {
	n, ok, err := d.counter.TryIncrement(d.capacity)
	if err != nil {
		d.observer.CounterFailed(d, err)
		d.observer.Rejected(d, n)
		return false
	}
	if !ok {
		d.observer.Rejected(d, n)
		return false
	}
	d.observer.Admitted(d, n)
	return true
}

// Release освобождает слот; на нуле это no-op, поэтому повторный вызов безопасен
func (d *Destination) Release() {
	n, ok, err := d.counter.Decrement()
	if err != nil {
		d.observer.CounterFailed(d, err)
		return
	}
	if ok {
		d.observer.Released(d, n)
	}
}

// memoryCounter - lock-free счетчик на CAS
type memoryCounter struct {
	n atomic.Int64
}

func (c *memoryCounter) TryIncrement(limit int64) (int64, bool, error) {
	for {
		cur := c.n.Load()
		if cur >= limit {
			return cur, false, nil
		}
		if c.n.CompareAndSwap(cur, cur+1) {
			return cur + 1, true, nil
		}
	}
}

func (c *memoryCounter) Decrement() (int64, bool, error) {
	for {
		cur := c.n.Load()
		if cur <= 0 {
			return 0, false, nil
		}
		if c.n.CompareAndSwap(cur, cur-1) {
			return cur - 1, true, nil
		}
	}
}

func (c *memoryCounter) Load() (int64, error) { return c.n.Load(), nil }

type nopObserver struct{}

func (nopObserver) Admitted(*Destination, int64)      {}
func (nopObserver) Rejected(*Destination, int64)      {}
func (nopObserver) Released(*Destination, int64)      {}
func (nopObserver) CounterFailed(*Destination, error) {}

var _ LoadCounter = (*memoryCounter)(nil)
