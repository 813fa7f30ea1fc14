package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/athebyme/request-router/internal/core/domain"
	"github.com/athebyme/request-router/internal/core/domain/balancer"
	"github.com/athebyme/request-router/internal/core/ports"
)

// routerService реализует входящий порт ports.Router
// на перегрузку не делает повторов и не перенаправляет запрос: решение остается за вызывающим
type routerService struct {
	strategies map[balancer.Kind]balancer.BalancingStrategy
	logger     ports.Logger
}

// NewRouterService создает роутер поверх набора стратегий, ключ - вид стратегии
func NewRouterService(
	strategies map[balancer.Kind]balancer.BalancingStrategy,
	logger ports.Logger,
) ports.Router {
	own := make(map[balancer.Kind]balancer.BalancingStrategy, len(strategies))
	for kind, s := range strategies {
		own[kind] = s
	}
	return &routerService{
		strategies: own,
		logger:     logger.With("service", "RouterService"),
	}
}

func (s *routerService) Strategies() []balancer.Kind {
	kinds := make([]balancer.Kind, 0, len(s.strategies))
	for kind := range s.strategies {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

func (s *routerService) Route(ctx context.Context, kind balancer.Kind, req domain.Request) (*domain.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	startTime := time.Now()
	reqLogger := s.logger.With(
		"request_id", req.ID,
		"request_type", req.Type,
		"strategy", string(kind),
	)

	strategy, ok := s.strategies[kind]
	if !ok {
		reqLogger.Error("Strategy is not configured")
		return nil, fmt.Errorf("%w: %q", balancer.ErrUnknownStrategy, kind)
	}

	dest, err := strategy.Select(req)
	if err != nil {
		reqLogger.Warn("Failed to select destination", "error", err)
		return nil, err
	}

	reqLogger = reqLogger.With("destination", dest.Address())
	reqLogger.Debug("Destination selected")

	ticket := &domain.Ticket{
		Request:     req,
		Destination: dest,
		Strategy:    strategy.Name(),
		Admitted:    dest.TryAdmit(),
	}

	if ticket.Admitted {
		reqLogger.Info("Request routed", "duration", time.Since(startTime))
	} else {
		reqLogger.Warn("Request not admitted, destination at capacity", "capacity", dest.Capacity())
	}
	return ticket, nil
}
