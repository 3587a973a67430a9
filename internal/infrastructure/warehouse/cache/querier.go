package cache

import (
	"context"

	"github.com/riskibarqy/olympic-data-hub/internal/domain/dataset"
	basecache "github.com/riskibarqy/olympic-data-hub/internal/platform/cache"
)

const keyPrefix = "warehouse:"

// Observer is told whether each lookup was served from the cache.
type Observer interface {
	CacheHit()
	CacheMiss()
}

// Querier memoizes results of the next querier by statement key. Failed
// queries are not cached, so a later call retries the warehouse.
type Querier struct {
	next     dataset.Querier
	cache    *basecache.Store
	observer Observer
}

func NewQuerier(next dataset.Querier, cache *basecache.Store, observer Observer) *Querier {
	return &Querier{next: next, cache: cache, observer: observer}
}

func (q *Querier) Query(ctx context.Context, stmt dataset.Statement) (dataset.Table, error) {
	loaded := false
	v, err := q.cache.GetOrLoad(ctx, keyPrefix+stmt.Key(), func(ctx context.Context) (any, error) {
		loaded = true
		table, err := q.next.Query(ctx, stmt)
		if err != nil {
			return nil, err
		}
		return table.Clone(), nil
	})
	q.observe(loaded)
	if err != nil {
		return dataset.Table{}, err
	}

	table, _ := v.(dataset.Table)
	return table.Clone(), nil
}

// Invalidate drops every cached result.
func (q *Querier) Invalidate(ctx context.Context) {
	q.cache.DeletePrefix(ctx, keyPrefix)
}

func (q *Querier) observe(loaded bool) {
	if q.observer == nil {
		return
	}
	if loaded {
		q.observer.CacheMiss()
		return
	}
	q.observer.CacheHit()
}
