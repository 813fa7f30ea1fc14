package domain_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/athebyme/request-router/internal/core/domain"
	"github.com/athebyme/request-router/internal/test/mocks"
	"github.com/golang/mock/gomock"
)

func newDestination(t *testing.T, address string, capacity int64, opts ...domain.DestinationOption) *domain.Destination {
	t.Helper()
	d, err := domain.NewDestination(address, capacity, opts...)
	if err != nil {
		t.Fatalf("NewDestination(%q, %d): %v", address, capacity, err)
	}
	return d
}

func TestNewDestination_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int64{0, -1} {
		_, err := domain.NewDestination("10.0.0.1", capacity)
		if !errors.Is(err, domain.ErrInvalidCapacity) {
			t.Errorf("capacity %d: expected ErrInvalidCapacity, got %v", capacity, err)
		}
	}
}

func TestDestination_TryAdmit_ExactlyCapacity(t *testing.T) {
	d := newDestination(t, "10.0.0.1", 3)

	for i := 1; i <= 3; i++ {
		if !d.TryAdmit() {
			t.Fatalf("admit %d: expected success", i)
		}
		if got := d.InFlight(); got != int64(i) {
			t.Fatalf("admit %d: expected in-flight %d, got %d", i, i, got)
		}
	}

	if d.TryAdmit() {
		t.Fatal("admit over capacity must fail")
	}
	if got := d.InFlight(); got != 3 {
		t.Errorf("rejected admit must not mutate state, in-flight %d", got)
	}
}

func TestDestination_Release_FloorAtZero(t *testing.T) {
	d := newDestination(t, "10.0.0.1", 2)

	d.Release()
	if got := d.InFlight(); got != 0 {
		t.Fatalf("expected 0 after release on idle destination, got %d", got)
	}

	d.TryAdmit()
	d.Release()
	d.Release()
	if got := d.InFlight(); got != 0 {
		t.Errorf("double release must leave 0, got %d", got)
	}
}

func TestDestination_ConcurrentAdmitRelease_KeepsBounds(t *testing.T) {
	const capacity = 5
	d := newDestination(t, "10.0.0.1", capacity)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		admitted int
		maxSeen  int64
	)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				if d.TryAdmit() {
					n := d.InFlight()
					mu.Lock()
					admitted++
					if n > maxSeen {
						maxSeen = n
					}
					mu.Unlock()
					d.Release()
				}
			}
		}()
	}
	wg.Wait()

	if maxSeen > capacity {
		t.Errorf("in-flight exceeded capacity: %d > %d", maxSeen, capacity)
	}
	if admitted == 0 {
		t.Error("expected at least one admission")
	}
	if got := d.InFlight(); got != 0 {
		t.Errorf("expected 0 in-flight after all releases, got %d", got)
	}
}

func TestDestination_EmitsAdmissionEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := mocks.NewMockAdmissionObserver(ctrl)
	d := newDestination(t, "10.0.0.1", 1, domain.WithObserver(observer))

	gomock.InOrder(
		observer.EXPECT().Admitted(d, int64(1)),
		observer.EXPECT().Rejected(d, int64(1)),
		observer.EXPECT().Released(d, int64(0)),
	)

	d.TryAdmit()
	d.TryAdmit()
	d.Release()
	d.Release() // no-op: событие не отправляется
}

func TestDestination_CounterFailure_FailsClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	counter := mocks.NewMockLoadCounter(ctrl)
	observer := mocks.NewMockAdmissionObserver(ctrl)
	d := newDestination(t, "10.0.0.1", 4, domain.WithCounter(counter), domain.WithObserver(observer))

	boom := errors.New("connection refused")
	counter.EXPECT().TryIncrement(int64(4)).Return(int64(0), false, boom)
	observer.EXPECT().CounterFailed(d, boom)
	observer.EXPECT().Rejected(d, int64(0))

	if d.TryAdmit() {
		t.Error("admission must fail when the counter is unavailable")
	}

	counter.EXPECT().Load().Return(int64(0), boom)
	observer.EXPECT().CounterFailed(d, boom)
	if got := d.InFlight(); got != 4 {
		t.Errorf("unreadable counter must report full capacity, got %d", got)
	}

	counter.EXPECT().Decrement().Return(int64(0), false, boom)
	observer.EXPECT().CounterFailed(d, boom)
	d.Release()
}
