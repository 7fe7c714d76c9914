// Package catalog is the read-only facade over the remote beverage catalog.
// Fetched copies are cached (the full list, and each beverage by id) until
// invalidated by a refresh.
package catalog

import (
	"context"
	"sync"

	"beverage-storefront/internal/domain"
	"beverage-storefront/internal/storeapi"
)

// Facade caches catalog reads and guarantees that the result of a superseded
// fetch is never applied: every in-flight fetch carries the cache generation
// it started under, and a refresh bumps the generation, so a slow older
// response cannot overwrite a newer one.
type Facade struct {
	api storeapi.Client

	mu      sync.Mutex
	gen     uint64
	list    []domain.Beverage
	hasList bool
	byID    map[string]domain.Beverage
}

func New(api storeapi.Client) *Facade {
	return &Facade{
		api:  api,
		byID: make(map[string]domain.Beverage),
	}
}

// Beverages returns the cached list, fetching it on first use.
func (f *Facade) Beverages(ctx context.Context) ([]domain.Beverage, error) {
	f.mu.Lock()
	if f.hasList {
		out := make([]domain.Beverage, len(f.list))
		copy(out, f.list)
		f.mu.Unlock()
		return out, nil
	}
	gen := f.gen
	f.mu.Unlock()

	return f.fetchList(ctx, gen)
}

// Refresh invalidates every cached copy and fetches a fresh list. Any fetch
// still in flight from before the refresh is superseded and its result
// discarded.
func (f *Facade) Refresh(ctx context.Context) ([]domain.Beverage, error) {
	f.mu.Lock()
	f.hasList = false
	f.list = nil
	f.byID = make(map[string]domain.Beverage)
	f.gen++
	gen := f.gen
	f.mu.Unlock()

	return f.fetchList(ctx, gen)
}

func (f *Facade) fetchList(ctx context.Context, gen uint64) ([]domain.Beverage, error) {
	bevs, err := f.api.FetchBeverages(ctx)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	if f.gen == gen {
		f.list = bevs
		f.hasList = true
		for _, b := range bevs {
			f.byID[b.ID] = b
		}
	}
	f.mu.Unlock()
	return bevs, nil
}

// Beverage returns a single beverage, from cache when possible.
func (f *Facade) Beverage(ctx context.Context, id string) (domain.Beverage, error) {
	f.mu.Lock()
	if b, ok := f.byID[id]; ok {
		f.mu.Unlock()
		return b, nil
	}
	gen := f.gen
	f.mu.Unlock()

	b, err := f.api.FetchBeverage(ctx, id)
	if err != nil {
		return domain.Beverage{}, err
	}
	f.mu.Lock()
	if f.gen == gen {
		f.byID[id] = b
	}
	f.mu.Unlock()
	return b, nil
}
