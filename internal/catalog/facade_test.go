package catalog

import (
	"context"
	"sync/atomic"
	"testing"

	"beverage-storefront/internal/domain"
	"beverage-storefront/internal/storeapi"
)

// stubAPI lets each test swap in behavior per method.
type stubAPI struct {
	fetchBeverages func(ctx context.Context) ([]domain.Beverage, error)
	fetchBeverage  func(ctx context.Context, id string) (domain.Beverage, error)
}

func (s *stubAPI) FetchBeverages(ctx context.Context) ([]domain.Beverage, error) {
	return s.fetchBeverages(ctx)
}

func (s *stubAPI) FetchBeverage(ctx context.Context, id string) (domain.Beverage, error) {
	return s.fetchBeverage(ctx, id)
}

func (s *stubAPI) FetchOrders(ctx context.Context) ([]domain.Order, error) { return nil, nil }

func (s *stubAPI) FetchOrder(ctx context.Context, id string) (domain.Order, error) {
	return domain.Order{}, nil
}

func (s *stubAPI) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	return domain.Order{}, nil
}

var _ storeapi.Client = (*stubAPI)(nil)

func TestBeverages_CachesList(t *testing.T) {
	var calls int32
	api := &stubAPI{
		fetchBeverages: func(ctx context.Context) ([]domain.Beverage, error) {
			atomic.AddInt32(&calls, 1)
			return []domain.Beverage{{ID: "bev-1", Name: "Latte"}}, nil
		},
	}
	f := New(api)

	for i := 0; i < 3; i++ {
		bevs, err := f.Beverages(context.Background())
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if len(bevs) != 1 {
			t.Fatalf("Expected 1 beverage, got %d", len(bevs))
		}
	}
	if calls != 1 {
		t.Errorf("Expected a single remote fetch, got %d", calls)
	}

	// list fetch also primes the by-id cache
	b, err := f.Beverage(context.Background(), "bev-1")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if b.Name != "Latte" {
		t.Errorf("Expected cached beverage, got %+v", b)
	}
}

func TestRefresh_ReplacesCache(t *testing.T) {
	var calls int32
	api := &stubAPI{
		fetchBeverages: func(ctx context.Context) ([]domain.Beverage, error) {
			n := atomic.AddInt32(&calls, 1)
			if n == 1 {
				return []domain.Beverage{{ID: "bev-1", Name: "Latte"}}, nil
			}
			return []domain.Beverage{{ID: "bev-2", Name: "Mocha"}}, nil
		},
	}
	f := New(api)

	_, _ = f.Beverages(context.Background())
	bevs, err := f.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(bevs) != 1 || bevs[0].ID != "bev-2" {
		t.Fatalf("Expected refreshed list, got %+v", bevs)
	}

	cached, _ := f.Beverages(context.Background())
	if cached[0].ID != "bev-2" {
		t.Error("Expected cache to hold the refreshed list")
	}
	if calls != 2 {
		t.Errorf("Expected 2 remote fetches, got %d", calls)
	}
}

func TestSupersededFetchIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var calls int32
	api := &stubAPI{
		fetchBeverages: func(ctx context.Context) ([]domain.Beverage, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				close(started)
				<-release // first request hangs until after the refresh
				return []domain.Beverage{{ID: "stale", Name: "Stale"}}, nil
			}
			return []domain.Beverage{{ID: "fresh", Name: "Fresh"}}, nil
		},
	}
	f := New(api)

	done := make(chan struct{})
	go func() {
		_, _ = f.Beverages(context.Background())
		close(done)
	}()
	<-started

	if _, err := f.Refresh(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	close(release)
	<-done

	// the slow first response must not overwrite the refreshed cache
	bevs, _ := f.Beverages(context.Background())
	if len(bevs) != 1 || bevs[0].ID != "fresh" {
		t.Errorf("Expected superseded result to be discarded, cache holds %+v", bevs)
	}
}

func TestBeverage_FetchesAndCaches(t *testing.T) {
	var calls int32
	api := &stubAPI{
		fetchBeverage: func(ctx context.Context, id string) (domain.Beverage, error) {
			atomic.AddInt32(&calls, 1)
			return domain.Beverage{ID: id, Name: "Latte"}, nil
		},
	}
	f := New(api)

	for i := 0; i < 2; i++ {
		b, err := f.Beverage(context.Background(), "bev-1")
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if b.ID != "bev-1" {
			t.Errorf("Expected bev-1, got %q", b.ID)
		}
	}
	if calls != 1 {
		t.Errorf("Expected a single remote fetch, got %d", calls)
	}
}
