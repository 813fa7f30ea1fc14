package domain_test

import (
	"testing"

	"github.com/athebyme/request-router/internal/core/domain"
)

func addresses(ds []*domain.Destination) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Address()
	}
	return out
}

func TestService_MembershipIsASet(t *testing.T) {
	svc := domain.NewService("http")
	a := newDestination(t, "10.0.0.1", 1)

	if !svc.AddDestination(a) {
		t.Fatal("first add must change membership")
	}
	if svc.AddDestination(a) {
		t.Error("adding a present destination must be a no-op")
	}
	if svc.Len() != 1 {
		t.Errorf("expected 1 member, got %d", svc.Len())
	}

	if !svc.RemoveDestination(a) {
		t.Fatal("remove of a member must change membership")
	}
	if svc.RemoveDestination(a) {
		t.Error("removing an absent destination must be a no-op")
	}
	if svc.Contains(a) || svc.Len() != 0 {
		t.Error("service must be empty after remove")
	}
}

func TestService_DuplicateAddressRejected(t *testing.T) {
	svc := domain.NewService("http")
	a := newDestination(t, "10.0.0.1", 1)
	impostor := newDestination(t, "10.0.0.1", 9)

	svc.AddDestination(a)
	if svc.AddDestination(impostor) {
		t.Error("a different destination with a taken address must not be added")
	}
	if svc.RemoveDestination(impostor) {
		t.Error("removing a non-member with a member's address must be a no-op")
	}
	if !svc.Contains(a) {
		t.Error("first member must stay")
	}
}

func TestService_DestinationsSortedSnapshot(t *testing.T) {
	svc := domain.NewService("http")
	for _, addr := range []string{"c", "a", "b"} {
		svc.AddDestination(newDestination(t, addr, 1))
	}

	snapshot := svc.Destinations()
	got := addresses(snapshot)
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	// снимок не связан с членством
	svc.RemoveDestination(snapshot[0])
	if len(snapshot) != 3 {
		t.Error("snapshot must not change after membership mutation")
	}
}

func TestService_SharedDestinationState(t *testing.T) {
	a := newDestination(t, "10.0.0.1", 2)
	first := domain.NewService("first")
	second := domain.NewService("second")
	first.AddDestination(a)
	second.AddDestination(a)

	first.Destinations()[0].TryAdmit()
	if got := second.Destinations()[0].InFlight(); got != 1 {
		t.Errorf("load must be visible through every holder, got %d", got)
	}
}
