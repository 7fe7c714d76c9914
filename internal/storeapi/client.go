// Package storeapi talks to the remote catalog and order services.
package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"beverage-storefront/internal/domain"
)

var ErrNotFound = errors.New("store api: not found")

// Client is the remote-call boundary the cart/order core depends on. Every
// method settles to a value or an error; transport details stay behind it.
type Client interface {
	FetchBeverages(ctx context.Context) ([]domain.Beverage, error)
	FetchBeverage(ctx context.Context, id string) (domain.Beverage, error)
	FetchOrders(ctx context.Context) ([]domain.Order, error)
	FetchOrder(ctx context.Context, id string) (domain.Order, error)
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error)
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTP(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPClient) FetchBeverages(ctx context.Context) ([]domain.Beverage, error) {
	var out []domain.Beverage
	if err := c.get(ctx, "/beverages", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) FetchBeverage(ctx context.Context, id string) (domain.Beverage, error) {
	var out domain.Beverage
	if err := c.get(ctx, "/beverages/"+url.PathEscape(id), &out); err != nil {
		return domain.Beverage{}, err
	}
	return out, nil
}

func (c *HTTPClient) FetchOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.get(ctx, "/orders", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) FetchOrder(ctx context.Context, id string) (domain.Order, error) {
	var out domain.Order
	if err := c.get(ctx, "/orders/"+url.PathEscape(id), &out); err != nil {
		return domain.Order{}, err
	}
	return out, nil
}

func (c *HTTPClient) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return domain.Order{}, fmt.Errorf("marshal order payload: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return domain.Order{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return domain.Order{}, fmt.Errorf("create order: unexpected status %d", resp.StatusCode)
	}
	var out domain.Order
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.Order{}, fmt.Errorf("decode created order: %w", err)
	}
	return out, nil
}

func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("GET %s: decode: %w", path, err)
	}
	return nil
}
