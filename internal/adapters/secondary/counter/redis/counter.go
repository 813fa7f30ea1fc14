package rediscounter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/athebyme/request-router/internal/core/domain"
	"github.com/athebyme/request-router/internal/core/ports"
	"github.com/go-redis/redis/v8"
)

// проверка и изменение счетчика должны быть атомарными, поэтому оба шага внутри Lua
var (
	tryIncrementScript = redis.NewScript(`
		local cur = tonumber(redis.call('GET', KEYS[1]) or '0')
		local limit = tonumber(ARGV[1])
		if cur < limit then
			cur = redis.call('INCR', KEYS[1])
			return {cur, 1}
		end
		return {cur, 0}
	`)

	decrementScript = redis.NewScript(`
		local cur = tonumber(redis.call('GET', KEYS[1]) or '0')
		if cur > 0 then
			cur = redis.call('DECR', KEYS[1])
			return {cur, 1}
		end
		return {cur, 0}
	`)
)

// Factory создает счетчики нагрузки Destination, хранящиеся в Redis
// несколько процессов с одной конфигурацией видят одну и ту же нагрузку
type Factory struct {
	client  redis.UniversalClient
	prefix  string
	timeout time.Duration
	logger  ports.Logger
}

// NewClient подключается к Redis и проверяет соединение
func NewClient(ctx context.Context, addr string, db int, logger ports.Logger) (*redis.Client, error) {
	redis.SetLogger(ports.NewPrintfLogger(logger.With("component", "go-redis")))

	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("не удалось пингануть redis %s: %w", addr, err)
	}
	return rdb, nil
}

func NewFactory(client redis.UniversalClient, prefix string, timeout time.Duration, logger ports.Logger) *Factory {
	return &Factory{
		client:  client,
		prefix:  prefix,
		timeout: timeout,
		logger:  logger.With("component", "RedisLoadCounter"),
	}
}

// Counter возвращает счетчик для Destination с адресом address в сервисе service
// один адрес в разных сервисах - разные Destination со своей емкостью, поэтому и ключи разные
func (f *Factory) Counter(service, address string) domain.LoadCounter {
	key := f.prefix + service + ":" + address
	f.logger.Debug("Load counter bound to redis key", "service", service, "destination", address, "key", key)
	return &Counter{client: f.client, key: key, timeout: f.timeout}
}

// Counter реализует domain.LoadCounter поверх одного ключа Redis
type Counter struct {
	client  redis.UniversalClient
	key     string
	timeout time.Duration
}

func (c *Counter) TryIncrement(limit int64) (int64, bool, error) {
	ctx, cancel := c.context()
	defer cancel()
	return runScript(ctx, tryIncrementScript, c.client, c.key, limit)
}

func (c *Counter) Decrement() (int64, bool, error) {
	ctx, cancel := c.context()
	defer cancel()
	return runScript(ctx, decrementScript, c.client, c.key)
}

func (c *Counter) Load() (int64, error) {
	ctx, cancel := c.context()
	defer cancel()

	n, err := c.client.Get(ctx, c.key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("чтение счетчика %s: %w", c.key, err)
	}
	return n, nil
}

// Key возвращает ключ Redis, в котором хранится счетчик
func (c *Counter) Key() string { return c.key }

func (c *Counter) context() (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.timeout)
}

func runScript(ctx context.Context, script *redis.Script, client redis.UniversalClient, key string, args ...interface{}) (int64, bool, error) {
	res, err := script.Run(ctx, client, []string{key}, args...).Slice()
	if err != nil {
		return 0, false, fmt.Errorf("redis script для %s: %w", key, err)
	}
	if len(res) != 2 {
		return 0, false, fmt.Errorf("неожиданный ответ redis для %s: %v", key, res)
	}
	value, ok1 := res[0].(int64)
	changed, ok2 := res[1].(int64)
	if !ok1 || !ok2 {
		return 0, false, fmt.Errorf("неожиданный ответ redis для %s: %v", key, res)
	}
	return value, changed == 1, nil
}

var _ domain.LoadCounter = (*Counter)(nil)
