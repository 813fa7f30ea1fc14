package strategies

import (
	"testing"

	"github.com/athebyme/request-router/internal/core/domain"
)

func mustDestination(t *testing.T, address string, capacity int64) *domain.Destination {
	t.Helper()
	d, err := domain.NewDestination(address, capacity)
	if err != nil {
		t.Fatalf("NewDestination(%q): %v", address, err)
	}
	return d
}

func serviceOf(t *testing.T, name string, ds ...*domain.Destination) *domain.Service {
	t.Helper()
	svc := domain.NewService(name)
	for _, d := range ds {
		if !svc.AddDestination(d) {
			t.Fatalf("failed to add %s", d.Address())
		}
	}
	return svc
}

// loadWith занимает n слотов на d
func loadWith(t *testing.T, d *domain.Destination, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if !d.TryAdmit() {
			t.Fatalf("admit %d on %s failed", i, d.Address())
		}
	}
}

func httpRequest(id string) domain.Request {
	return domain.NewRequest(id, "http", nil)
}
