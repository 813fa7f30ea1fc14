package balancer

import (
	"fmt"
	"strings"
)

// Kind - имя одной из стратегий балансировки
type Kind string

const (
	KindLeastLoaded Kind = "least-loaded"
	KindHashRouted  Kind = "hash-routed"
	KindRoundRobin  Kind = "round-robin"
)

// Kinds возвращает все поддерживаемые стратегии в порядке пунктов меню
func Kinds() []Kind {
	return []Kind{KindLeastLoaded, KindHashRouted, KindRoundRobin}
}

// ParseKind принимает каноничные имена, а также старые пункты меню (1/2/3) и их названия
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "least-loaded", "least-connection", "least-connections", "leastconn", "1":
		return KindLeastLoaded, nil
	case "hash-routed", "routed", "hash", "2":
		return KindHashRouted, nil
	case "round-robin", "roundrobin", "rr", "3":
		return KindRoundRobin, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}
