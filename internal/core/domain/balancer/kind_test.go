package balancer

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	testCases := []struct {
		in   string
		want Kind
	}{
		{"least-loaded", KindLeastLoaded},
		{"Least-Connection", KindLeastLoaded},
		{"1", KindLeastLoaded},
		{"routed", KindHashRouted},
		{"2", KindHashRouted},
		{" hash-routed ", KindHashRouted},
		{"rr", KindRoundRobin},
		{"3", KindRoundRobin},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseKind(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestParseKind_Unknown(t *testing.T) {
	for _, in := range []string{"", "random", "5"} {
		if _, err := ParseKind(in); !errors.Is(err, ErrUnknownStrategy) {
			t.Errorf("%q: expected ErrUnknownStrategy, got %v", in, err)
		}
	}
}
