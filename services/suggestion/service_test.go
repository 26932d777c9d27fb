package suggestion

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeSource struct {
	mu     sync.Mutex
	calls  int
	cities []string
	err    error
}

func (f *fakeSource) SearchCities(_ context.Context, _ string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls += 1
	return f.cities, f.err
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]string)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	values, ok := c.entries[key]
	return values, ok
}

func (c *memoryCache) Set(_ context.Context, key string, values []string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = values
	return nil
}

func (c *memoryCache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]string)
	return nil
}

func TestSuggest_CachesUpstreamResult(t *testing.T) {
	source := &fakeSource{cities: []string{"Bangalore", "Bandra"}}
	svc := NewService(source, newMemoryCache())
	ctx := context.Background()

	first, err := svc.Suggest(ctx, "ban")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Suggest(ctx, "ban")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.calls != 1 {
		t.Fatalf("expected a single upstream call, got %d", source.calls)
	}
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("unexpected suggestions: %v / %v", first, second)
	}
}

func TestSuggest_UpstreamErrorPropagates(t *testing.T) {
	source := &fakeSource{err: errors.New("upstream down")}
	svc := NewService(source, newMemoryCache())

	if _, err := svc.Suggest(context.Background(), "ban"); err == nil {
		t.Fatal("expected error when upstream fails and cache is cold")
	}
}

func TestClear_DropsCache(t *testing.T) {
	source := &fakeSource{cities: []string{"Bangalore"}}
	svc := NewService(source, newMemoryCache())
	ctx := context.Background()

	svc.Suggest(ctx, "ban")
	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	svc.Suggest(ctx, "ban")
	if source.calls != 2 {
		t.Fatalf("expected refetch after clear, got %d calls", source.calls)
	}
}
