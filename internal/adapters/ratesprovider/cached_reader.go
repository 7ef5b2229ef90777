package ratesprovider

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/casa_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/casa_ledger_app/internal/middleware"
	"golang.org/x/sync/singleflight"
)

// CachedReader serves rate tables from a RateCache and collapses concurrent misses
// for the same base into one upstream call. Failures are never cached.
type CachedReader struct {
	source portsrepo.ExchangeRateReader
	cache  RateCache
	ttl    time.Duration
	// fetchTimeout bounds a shared upstream fetch, which outlives any single caller.
	fetchTimeout time.Duration
	group        singleflight.Group
}

const defaultFetchTimeout = 10 * time.Second

// CachedReaderOption configures a CachedReader.
type CachedReaderOption func(*CachedReader)

// WithFetchTimeout sets the deadline of a shared upstream fetch.
func WithFetchTimeout(d time.Duration) CachedReaderOption {
	return func(r *CachedReader) {
		if d > 0 {
			r.fetchTimeout = d
		}
	}
}

var _ portsrepo.ExchangeRateReader = (*CachedReader)(nil)

func NewCachedReader(source portsrepo.ExchangeRateReader, cache RateCache, ttl time.Duration, opts ...CachedReaderOption) *CachedReader {
	r := &CachedReader{source: source, cache: cache, ttl: ttl, fetchTimeout: defaultFetchTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *CachedReader) FetchRateTable(ctx context.Context, base domain.CurrencyCode) (*domain.RateTable, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if table, ok := r.lookup(ctx, logger, base); ok {
		return table, nil
	}

	// The fetch is detached from the caller that started it: a cancelled request must not
	// fail the others waiting on the same key. Each caller still stops on its own ctx.
	ch := r.group.DoChan(base.String(), func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.fetchTimeout)
		defer cancel()

		if table, ok := r.lookup(fetchCtx, logger, base); ok {
			return table, nil
		}
		table, err := r.source.FetchRateTable(fetchCtx, base)
		if err != nil {
			return nil, err
		}
		if err := r.cache.Set(fetchCtx, table, r.ttl); err != nil {
			logger.Warn("Failed to cache exchange rates", slog.String("base", base.String()), slog.String("error", err.Error()))
		}
		return table, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			logger.Debug("Exchange rate fetch shared with concurrent caller", slog.String("base", base.String()))
		}
		return res.Val.(*domain.RateTable), nil
	}
}

// lookup treats cache errors as misses.
func (r *CachedReader) lookup(ctx context.Context, logger *slog.Logger, base domain.CurrencyCode) (*domain.RateTable, bool) {
	table, ok, err := r.cache.Get(ctx, base)
	if err != nil {
		logger.Warn("Exchange rate cache read failed", slog.String("base", base.String()), slog.String("error", err.Error()))
		return nil, false
	}
	return table, ok
}
