package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/riskibarqy/olympic-data-hub/internal/domain/dataset"
	"github.com/riskibarqy/olympic-data-hub/internal/domain/olympics"
	basecache "github.com/riskibarqy/olympic-data-hub/internal/platform/cache"
)

type countingObserver struct {
	hits, misses atomic.Int32
}

func (o *countingObserver) CacheHit()  { o.hits.Add(1) }
func (o *countingObserver) CacheMiss() { o.misses.Add(1) }

func TestQuerier_ReusesCachedResult(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	next := dataset.QuerierFunc(func(context.Context, dataset.Statement) (dataset.Table, error) {
		calls.Add(1)
		return dataset.Table{Columns: []string{"YEAR"}, Rows: [][]any{{int64(2016)}}}, nil
	})
	observer := &countingObserver{}
	q := NewQuerier(next, basecache.NewStore(0), observer)

	stmt := olympics.MedalTotalsByYear(olympics.SeasonSummer)
	first, err := q.Query(context.Background(), stmt)
	if err != nil {
		t.Fatalf("first query: %v", err)
	}
	first.Rows[0][0] = int64(1900)

	second, err := q.Query(context.Background(), olympics.MedalTotalsByYear(olympics.SeasonSummer))
	if err != nil {
		t.Fatalf("second query: %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("warehouse called %d times, want 1", got)
	}
	if second.Rows[0][0] != int64(2016) {
		t.Fatalf("cached result was mutated through a returned table: %v", second.Rows[0][0])
	}
	if observer.hits.Load() != 1 || observer.misses.Load() != 1 {
		t.Fatalf("unexpected hit/miss: %d/%d", observer.hits.Load(), observer.misses.Load())
	}

	if _, err := q.Query(context.Background(), olympics.MedalTotalsByYear(olympics.SeasonWinter)); err != nil {
		t.Fatalf("winter query: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("different bound arguments must miss the cache, calls=%d", got)
	}
}

func TestQuerier_DoesNotCacheFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	boom := errors.New("warehouse unavailable")
	next := dataset.QuerierFunc(func(context.Context, dataset.Statement) (dataset.Table, error) {
		if calls.Add(1) == 1 {
			return dataset.Table{}, boom
		}
		return dataset.Empty(), nil
	})
	q := NewQuerier(next, basecache.NewStore(0), nil)

	stmt := olympics.GoldTrendsByCountry()
	if _, err := q.Query(context.Background(), stmt); !errors.Is(err, boom) {
		t.Fatalf("expected failure, got %v", err)
	}
	if _, err := q.Query(context.Background(), stmt); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if _, err := q.Query(context.Background(), stmt); err != nil {
		t.Fatalf("expected cached result, got %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("warehouse called %d times, want 2", got)
	}
}

func TestQuerier_ConcurrentCallersShareOneLoad(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	release := make(chan struct{})
	next := dataset.QuerierFunc(func(context.Context, dataset.Statement) (dataset.Table, error) {
		calls.Add(1)
		<-release
		return dataset.Empty(), nil
	})
	q := NewQuerier(next, basecache.NewStore(0), nil)

	const callers = 16
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			_, _ = q.Query(context.Background(), olympics.TopAthletesByMedals(10))
		}()
	}
	close(release)
	wg.Wait()

	if got := calls.Load(); got < 1 || got > callers {
		t.Fatalf("unexpected call count %d", got)
	}
	if _, err := q.Query(context.Background(), olympics.TopAthletesByMedals(10)); err != nil {
		t.Fatalf("query after load: %v", err)
	}
	before := calls.Load()
	q.Invalidate(context.Background())
	if _, err := q.Query(context.Background(), olympics.TopAthletesByMedals(10)); err != nil {
		t.Fatalf("query after invalidate: %v", err)
	}
	if calls.Load() != before+1 {
		t.Fatalf("invalidate must force a reload")
	}
}
