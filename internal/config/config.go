package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/athebyme/request-router/internal/core/domain/balancer"
	"gopkg.in/yaml.v3"
)

const (
	CounterBackendMemory = "memory"
	CounterBackendRedis  = "redis"
)

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

type RoundRobinConfig struct {
	// PruneRemoved - не выдавать из очереди Destination, удаленные из сервиса
	PruneRemoved bool `yaml:"pruneRemoved"`
}

type RedisConfig struct {
	Addr      string        `yaml:"addr"`
	DB        int           `yaml:"db"`
	KeyPrefix string        `yaml:"keyPrefix"`
	Timeout   time.Duration `yaml:"timeout"`
}

type CounterConfig struct {
	Backend string      `yaml:"backend"` // memory, redis
	Redis   RedisConfig `yaml:"redis"`
}

type DestinationConfig struct {
	Address  string `yaml:"address"`
	Capacity int64  `yaml:"capacity"`
}

type ServiceConfig struct {
	Name         string              `yaml:"name"`
	RequestTypes []string            `yaml:"requestTypes"`
	Destinations []DestinationConfig `yaml:"destinations"`
}

type Config struct {
	Strategy   string           `yaml:"strategy"`
	Log        LogConfig        `yaml:"log"`
	RoundRobin RoundRobinConfig `yaml:"roundRobin"`
	Counter    CounterConfig    `yaml:"counter"`
	Services   []ServiceConfig  `yaml:"services"`
}

func defaults() *Config {
	return &Config{
		Strategy: string(balancer.KindLeastLoaded),
		Log:      LogConfig{Level: "info", Format: "text"},
		Counter: CounterConfig{
			Backend: CounterBackendMemory,
			Redis: RedisConfig{
				Addr:      "localhost:6379",
				KeyPrefix: "router:inflight:",
				Timeout:   500 * time.Millisecond,
			},
		},
	}
}

// Default возвращает конфигурацию без файла: один сервис http из трех Destination
func Default() *Config {
	conf := defaults()
	conf.Services = []ServiceConfig{{
		Name:         "http",
		RequestTypes: []string{"http"},
		Destinations: []DestinationConfig{
			{Address: "192.168.0.1", Capacity: 12},
			{Address: "192.168.0.2", Capacity: 20},
			{Address: "192.168.0.3", Capacity: 15},
		},
	}}
	return conf
}

func LoadConfig(configPath string) (*Config, error) {
	conf := defaults()
	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла конфигурации %s: %w", configPath, err)
	}

	err = yaml.Unmarshal(yamlFile, conf)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга YAML %s: %w", configPath, err)
	}

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("невалидная конфигурация %s: %w", configPath, err)
	}
	return conf, nil
}

// Validate нормализует значения и проверяет обязательные поля
func (conf *Config) Validate() error {
	// нормализуем значения конфига логов
	conf.Log.Level = strings.ToLower(conf.Log.Level)
	conf.Log.Format = strings.ToLower(conf.Log.Format)
	if conf.Log.Level == "" {
		conf.Log.Level = "info"
	}
	if conf.Log.Format == "" {
		conf.Log.Format = "text"
	}

	kind, err := balancer.ParseKind(conf.Strategy)
	if err != nil {
		return err
	}
	conf.Strategy = string(kind)

	conf.Counter.Backend = strings.ToLower(conf.Counter.Backend)
	switch conf.Counter.Backend {
	case "":
		conf.Counter.Backend = CounterBackendMemory
	case CounterBackendMemory:
	case CounterBackendRedis:
		if conf.Counter.Redis.Addr == "" {
			return fmt.Errorf("counter.redis.addr обязателен для backend '%s'", CounterBackendRedis)
		}
		if conf.Counter.Redis.Timeout <= 0 {
			return fmt.Errorf("counter.redis.timeout должен быть положительным значением")
		}
	default:
		return fmt.Errorf("неподдерживаемый counter.backend: %s", conf.Counter.Backend)
	}

	if len(conf.Services) == 0 {
		return fmt.Errorf("не указаны сервисы ('services')")
	}

	serviceNames := make(map[string]bool)
	requestTypes := make(map[string]string)
	for _, svc := range conf.Services {
		if svc.Name == "" {
			return fmt.Errorf("у сервиса не указано имя ('name')")
		}
		if serviceNames[svc.Name] {
			return fmt.Errorf("обнаружен дублирующийся сервис: %s", svc.Name)
		}
		serviceNames[svc.Name] = true

		if len(svc.RequestTypes) == 0 {
			return fmt.Errorf("у сервиса %s не указаны типы запросов ('requestTypes')", svc.Name)
		}
		for _, rt := range svc.RequestTypes {
			// перерегистрация типа в рантайме перезаписывает привязку,
			// но в конфиге два владельца одного типа почти наверняка ошибка
			if owner, ok := requestTypes[rt]; ok {
				return fmt.Errorf("тип запроса %s привязан к сервисам %s и %s", rt, owner, svc.Name)
			}
			requestTypes[rt] = svc.Name
		}

		seen := make(map[string]bool)
		for _, d := range svc.Destinations {
			if d.Capacity <= 0 {
				return fmt.Errorf("capacity адреса %s в сервисе %s должен быть положительным", d.Address, svc.Name)
			}
			if seen[d.Address] {
				return fmt.Errorf("обнаружен дублирующийся адрес в сервисе %s: %s", svc.Name, d.Address)
			}
			seen[d.Address] = true
		}
	}

	return nil
}
