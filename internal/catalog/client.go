// internal/catalog/client.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/your-org/primecart/internal/config"
)

// Client is a read-only HTTP client for the remote product catalog.
// Every call issues a fresh request: no retries, no caching.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a new catalog client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Catalog.BaseURL,
		client: &http.Client{
			Timeout: cfg.Catalog.RequestTimeout,
		},
	}
}

// Products retrieves the full product list
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.get(ctx, "fetch products", "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product retrieves a single product by its identifier
func (c *Client) Product(ctx context.Context, id int) (*Product, error) {
	var product Product
	op := fmt.Sprintf("fetch product %d", id)
	if err := c.get(ctx, op, fmt.Sprintf("/products/%d", id), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Categories retrieves the distinct category names
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.get(ctx, "fetch categories", "/products/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ProductsByCategory retrieves the products belonging to one category
func (c *Client) ProductsByCategory(ctx context.Context, category string) ([]Product, error) {
	var products []Product
	op := fmt.Sprintf("fetch category %s", category)
	path := "/products/category/" + url.PathEscape(category)
	if err := c.get(ctx, op, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// get issues a single GET request and decodes the JSON response into dest
func (c *Client) get(ctx context.Context, op, path string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Op: op, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &Error{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}
