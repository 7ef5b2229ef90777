package ratesprovider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// RateCache stores rate tables keyed by base currency.
type RateCache interface {
	Get(ctx context.Context, base domain.CurrencyCode) (*domain.RateTable, bool, error)
	Set(ctx context.Context, table *domain.RateTable, ttl time.Duration) error
}

func cacheKey(base domain.CurrencyCode) string {
	return "fx:latest:" + base.String()
}

// MemoryCache keeps rate tables in process.
type MemoryCache struct {
	store *gocache.Cache
}

var _ RateCache = (*MemoryCache)(nil)

// NewMemoryCache creates a MemoryCache whose entries live for ttl.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{store: gocache.New(ttl, 2*ttl)}
}

func (c *MemoryCache) Get(_ context.Context, base domain.CurrencyCode) (*domain.RateTable, bool, error) {
	v, found := c.store.Get(cacheKey(base))
	if !found {
		return nil, false, nil
	}
	return v.(*domain.RateTable), true, nil
}

func (c *MemoryCache) Set(_ context.Context, table *domain.RateTable, ttl time.Duration) error {
	c.store.Set(cacheKey(table.Base), table, ttl)
	return nil
}

// cachedTable is the redis payload.
type cachedTable struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	FetchedAt time.Time                  `json:"fetchedAt"`
}

// RedisCache shares rate tables between instances.
type RedisCache struct {
	client redis.Cmdable
}

var _ RateCache = (*RedisCache)(nil)

func NewRedisCache(client redis.Cmdable) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, base domain.CurrencyCode) (*domain.RateTable, bool, error) {
	raw, err := c.client.Get(ctx, cacheKey(base)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", cacheKey(base), err)
	}

	var ct cachedTable
	if err := json.Unmarshal(raw, &ct); err != nil {
		return nil, false, fmt.Errorf("decoding cached rates for %s: %w", base, err)
	}
	table := &domain.RateTable{
		Base:      domain.NormalizeCurrencyCode(ct.Base),
		Rates:     make(map[domain.CurrencyCode]decimal.Decimal, len(ct.Rates)),
		FetchedAt: ct.FetchedAt,
	}
	for code, r := range ct.Rates {
		table.Rates[domain.CurrencyCode(code)] = r
	}
	return table, true, nil
}

func (c *RedisCache) Set(ctx context.Context, table *domain.RateTable, ttl time.Duration) error {
	payload, err := marshalTable(table)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, cacheKey(table.Base), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", cacheKey(table.Base), err)
	}
	return nil
}

func marshalTable(table *domain.RateTable) ([]byte, error) {
	ct := cachedTable{
		Base:      table.Base.String(),
		Rates:     make(map[string]decimal.Decimal, len(table.Rates)),
		FetchedAt: table.FetchedAt,
	}
	for code, r := range table.Rates {
		ct.Rates[code.String()] = r
	}
	payload, err := json.Marshal(ct)
	if err != nil {
		return nil, fmt.Errorf("encoding rates for %s: %w", table.Base, err)
	}
	return payload, nil
}
