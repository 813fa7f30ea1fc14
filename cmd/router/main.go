package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	logadapter "github.com/athebyme/request-router/internal/adapters/load_balancer/log"
	"github.com/athebyme/request-router/internal/adapters/load_balancer/strategies"
	rediscounter "github.com/athebyme/request-router/internal/adapters/secondary/counter/redis"
	"github.com/athebyme/request-router/internal/config"
	"github.com/athebyme/request-router/internal/core/app"
	"github.com/athebyme/request-router/internal/core/domain/balancer"
	"golang.org/x/time/rate"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (built-in http topology when empty)")
	strategyFlag := flag.String("strategy", "", "Default strategy: least-loaded, hash-routed, round-robin")
	requestType := flag.String("type", "http", "Request type for generated requests")
	count := flag.Int("n", 0, "Route n generated requests and exit instead of reading stdin")
	perSecond := flag.Float64("rate", 0, "Pace generated requests, requests per second (0 = unlimited)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadConfig(*configPath)
		if err != nil {
			bootstrapLogger := logadapter.NewSlogAdapterTo(os.Stderr, "error", false, false)
			bootstrapLogger.Error("Failed to load configuration", "error", err, "path", *configPath)
			os.Exit(1)
		}
	}
	if *strategyFlag != "" {
		cfg.Strategy = *strategyFlag
	}
	defaultKind, err := balancer.ParseKind(cfg.Strategy)
	if err != nil {
		logadapter.NewSlogAdapterTo(os.Stderr, "error", false, false).Error("Invalid strategy", "error", err)
		os.Exit(1)
	}

	logger := logadapter.NewSlogAdapterTo(os.Stderr, cfg.Log.Level, cfg.Log.Format == "json", false)
	logger.Info("Configuration loaded", "strategy", defaultKind, "services", len(cfg.Services), "counter", cfg.Counter.Backend)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var newCounter app.CounterFactory
	if cfg.Counter.Backend == config.CounterBackendRedis {
		client, err := rediscounter.NewClient(ctx, cfg.Counter.Redis.Addr, cfg.Counter.Redis.DB, logger)
		if err != nil {
			logger.Error("Failed to connect load counter storage", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		newCounter = rediscounter.NewFactory(client, cfg.Counter.Redis.KeyPrefix, cfg.Counter.Redis.Timeout, logger).Counter
	}

	opts := strategies.Options{RoundRobinPruneRemoved: cfg.RoundRobin.PruneRemoved}
	byKind := make(map[balancer.Kind]balancer.BalancingStrategy)
	all := make([]balancer.BalancingStrategy, 0, len(balancer.Kinds()))
	for _, kind := range balancer.Kinds() {
		s, err := strategies.New(kind, opts)
		if err != nil {
			logger.Error("Failed to create strategy", "strategy", kind, "error", err)
			os.Exit(1)
		}
		byKind[kind] = s
		all = append(all, s)
	}

	topology, err := app.BuildTopology(serviceSpecs(cfg), all, newCounter, logadapter.NewAdmissionLogger(logger), logger)
	if err != nil {
		logger.Error("Failed to build topology", "error", err)
		os.Exit(1)
	}

	d := &driver{
		router:      app.NewRouterService(byKind, logger),
		topology:    topology,
		defaultKind: defaultKind,
		requestType: *requestType,
		out:         os.Stdout,
	}

	if *count > 0 {
		limiter := rate.NewLimiter(rate.Inf, 1)
		if *perSecond > 0 {
			limiter = rate.NewLimiter(rate.Limit(*perSecond), 1)
		}
		err = d.generate(ctx, *count, limiter)
	} else {
		err = d.interactive(ctx, os.Stdin)
	}
	if err != nil && ctx.Err() == nil {
		logger.Error("Driver stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Application finished.")
}

func serviceSpecs(cfg *config.Config) []app.ServiceSpec {
	specs := make([]app.ServiceSpec, 0, len(cfg.Services))
	for _, svc := range cfg.Services {
		spec := app.ServiceSpec{Name: svc.Name, RequestTypes: svc.RequestTypes}
		for _, d := range svc.Destinations {
			spec.Destinations = append(spec.Destinations, app.DestinationSpec{Address: d.Address, Capacity: d.Capacity})
		}
		specs = append(specs, spec)
	}
	return specs
}
